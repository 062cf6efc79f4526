package handler

import (
	"net/http"

	"github.com/veggierescue/veggierescue/internal/api/models"
	"github.com/veggierescue/veggierescue/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct{}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler() *OpsHandler {
	return &OpsHandler{}
}

// HealthCheck handles GET /health - liveness check. It sits outside the
// rate limit and auth gates so probes always get through.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{Status: "ok"})
}

// Root handles GET / - server banner.
func (h *OpsHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Message{Message: "Veggie Rescue Server is running!"})
}

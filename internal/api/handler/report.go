package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/response"
	"github.com/veggierescue/veggierescue/internal/report"
)

// ReportHandler handles delivery report endpoints.
type ReportHandler struct {
	service *report.Service
	log     zerolog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *report.Service, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// RecipientSummaries handles GET /reports/recipients - per-recipient
// delivery totals aggregated from the tracking spreadsheets.
func (h *ReportHandler) RecipientSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.RecipientSummaries(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, http.StatusOK, summaries)
}

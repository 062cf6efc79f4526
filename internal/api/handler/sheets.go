package handler

import (
	"encoding/json"
	"net/http"

	"github.com/veggierescue/veggierescue/internal/api/models"
	"github.com/veggierescue/veggierescue/internal/api/response"
	"github.com/veggierescue/veggierescue/internal/sheets"
)

// SheetsHandler handles the mock Google Sheets endpoints.
type SheetsHandler struct {
	service *sheets.Service
}

// NewSheetsHandler creates a new SheetsHandler.
func NewSheetsHandler(service *sheets.Service) *SheetsHandler {
	return &SheetsHandler{service: service}
}

// GetSheet handles GET /sheets - return the current sheet data.
func (h *SheetsHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	response.Data(w, r, h.service.Get())
}

// PutSheet handles PUT /sheets - replace the sheet data and echo it back.
func (h *SheetsHandler) PutSheet(w http.ResponseWriter, r *http.Request) {
	var input sheets.TableData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.WriteError(w, r, models.NewBadRequest("Invalid JSON body"))
		return
	}
	response.Data(w, r, h.service.Put(input))
}

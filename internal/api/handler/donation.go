// Package handler provides HTTP handlers for the Veggie Rescue API.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/models"
	"github.com/veggierescue/veggierescue/internal/api/response"
	"github.com/veggierescue/veggierescue/internal/donation"
)

// DonationHandler handles donation endpoints.
type DonationHandler struct {
	service *donation.Service
	log     zerolog.Logger
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(service *donation.Service, log zerolog.Logger) *DonationHandler {
	return &DonationHandler{
		service: service,
		log:     log,
	}
}

// ListDonations handles GET /donations - list all donations, newest first.
func (h *DonationHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.service.List(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.Data(w, r, donations)
}

// GetDonation handles GET /donations/{donationId} - get a single donation.
func (h *DonationHandler) GetDonation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationId")

	d, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.Data(w, r, d)
}

// CreateDonation handles POST /donations - create a new donation.
func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var input models.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.WriteError(w, r, models.NewBadRequest("Invalid JSON body"))
		return
	}

	d, err := h.service.Create(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	location := fmt.Sprintf("/donations/%s", d.ID)
	response.Created(w, r, location, d)
}

// UpdateDonation handles PATCH /donations/{donationId} - partial update.
func (h *DonationHandler) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationId")

	var input models.UpdateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.WriteError(w, r, models.NewBadRequest("Invalid JSON body"))
		return
	}

	d, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.Data(w, r, d)
}

// DeleteDonation handles DELETE /donations/{donationId} - delete a donation.
func (h *DonationHandler) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "donationId")

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.NoContent(w, r)
}

// Package response provides utilities for HTTP response handling.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/middleware"
	"github.com/veggierescue/veggierescue/internal/api/models"
	"github.com/veggierescue/veggierescue/internal/donation"
)

// dataEnvelope is the uniform success wrapper: { "data": ... }.
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

// JSON writes a JSON response with the given status code.
// Includes X-Request-Id header for correlation.
func JSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	requestID := middleware.GetRequestID(r.Context())
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// Data writes a 200 response with the body wrapped in the data envelope.
func Data(w http.ResponseWriter, r *http.Request, data interface{}) {
	JSON(w, r, http.StatusOK, dataEnvelope{Data: data})
}

// Created writes a 201 response with the body wrapped in the data envelope
// and an optional Location header.
func Created(w http.ResponseWriter, r *http.Request, location string, data interface{}) {
	if location != "" {
		w.Header().Set("Location", location)
	}
	JSON(w, r, http.StatusCreated, dataEnvelope{Data: data})
}

// NoContent writes a 204 No Content response.
func NoContent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Error is the single normalizing boundary for failures raised by the
// handler chain. It maps the error to the uniform envelope, logs it once
// with its code and message, and writes the response. Unclassified failures
// become a generic 500; their message never reaches the client.
func Error(w http.ResponseWriter, r *http.Request, log zerolog.Logger, err error) {
	var envelope *models.ErrorEnvelope

	var verr *donation.ValidationError
	switch {
	case errors.As(err, &verr):
		envelope = models.NewValidationError(verr.Errors)
	case errors.Is(err, donation.ErrDonationNotFound):
		envelope = models.NewNotFound("Donation")
	default:
		envelope = models.NewInternal()
	}

	event := log.Warn()
	if envelope.Status() >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("code", envelope.Error.Code).
		Str("path", r.URL.Path).
		Msg(err.Error())

	WriteError(w, r, envelope)
}

// WriteError writes a prebuilt error envelope with request correlation.
func WriteError(w http.ResponseWriter, r *http.Request, envelope *models.ErrorEnvelope) {
	requestID := middleware.GetRequestID(r.Context())
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	envelope.Write(w)
}

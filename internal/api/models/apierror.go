package models

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Error codes returned in the error envelope. Explicit constants rather
// than anything derived from type names at runtime; the wire values match
// the historical uppercase-plus-suffix scheme clients already parse.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOTFOUND_ERROR"
	CodeUnauthorized = "UNAUTHORIZED_ERROR"
	CodeRateLimit    = "RATELIMIT_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// FieldError represents a validation error on a specific field. Field paths
// use dot/index notation for nested and array fields, e.g. "items.0.quantity".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the body of the uniform error envelope.
type APIError struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// ErrorEnvelope wraps every error response: { "error": { message, code, details? } }.
type ErrorEnvelope struct {
	Error APIError `json:"error"`

	status int
}

// Status returns the HTTP status code for this error.
func (e *ErrorEnvelope) Status() int {
	return e.status
}

// Write writes the envelope as JSON to the ResponseWriter.
func (e *ErrorEnvelope) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(e)
}

// NewValidationError creates a 400 envelope carrying field-level details.
func NewValidationError(details []FieldError) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: "Validation failed",
			Code:    CodeValidation,
			Details: details,
		},
		status: http.StatusBadRequest,
	}
}

// NewBadRequest creates a 400 envelope with a custom message and no details.
// Used for requests that fail before schema validation (e.g. malformed JSON).
func NewBadRequest(message string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    CodeValidation,
		},
		status: http.StatusBadRequest,
	}
}

// NewNotFound creates a 404 envelope for the named resource.
func NewNotFound(resource string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: resource + " not found",
			Code:    CodeNotFound,
		},
		status: http.StatusNotFound,
	}
}

// NewUnauthorized creates a 401 envelope. The message is fixed; whatever
// detail the failure carried is logged server-side, never surfaced.
func NewUnauthorized() *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: "Unauthorized user",
			Code:    CodeUnauthorized,
		},
		status: http.StatusUnauthorized,
	}
}

// NewRateLimit creates a 429 envelope. retryAfter is the remaining window
// time in seconds.
func NewRateLimit(retryAfter int) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: "Request limit exceeded. Try again after " + strconv.Itoa(retryAfter) + " seconds.",
			Code:    CodeRateLimit,
		},
		status: http.StatusTooManyRequests,
	}
}

// NewInternal creates a 500 envelope with a generic message. Internal error
// text must never reach the client.
func NewInternal() *ErrorEnvelope {
	return &ErrorEnvelope{
		Error: APIError{
			Message: "Internal server error",
			Code:    CodeInternal,
		},
		status: http.StatusInternalServerError,
	}
}

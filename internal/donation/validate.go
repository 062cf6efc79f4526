package donation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/veggierescue/veggierescue/internal/api/models"
)

// emailRegex accepts RFC-shaped addresses: something@something.tld with no
// whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// validateCreateInput validates the create donation payload.
func (s *Service) validateCreateInput(input *models.CreateDonationRequest) []models.FieldError {
	var errs []models.FieldError

	if input.DonorName == "" {
		errs = append(errs, models.FieldError{Field: "donorName", Message: "Donor name is required"})
	}

	if !emailRegex.MatchString(input.DonorEmail) {
		errs = append(errs, models.FieldError{Field: "donorEmail", Message: "Invalid email address"})
	}

	errs = append(errs, validateItems(input.Items)...)

	if input.PickupAddress == "" {
		errs = append(errs, models.FieldError{Field: "pickupAddress", Message: "Pickup address is required"})
	}

	if !validDateTime(input.PickupDate) {
		errs = append(errs, models.FieldError{Field: "pickupDate", Message: "Invalid date format"})
	}

	return errs
}

// validateUpdateInput validates the update donation payload. Every field is
// optional; provided values must satisfy the same rules as on creation.
func (s *Service) validateUpdateInput(input *models.UpdateDonationRequest) []models.FieldError {
	var errs []models.FieldError

	if input.DonorName != nil && *input.DonorName == "" {
		errs = append(errs, models.FieldError{Field: "donorName", Message: "Donor name is required"})
	}

	if input.DonorEmail != nil && !emailRegex.MatchString(*input.DonorEmail) {
		errs = append(errs, models.FieldError{Field: "donorEmail", Message: "Invalid email address"})
	}

	if input.Items != nil {
		errs = append(errs, validateItems(*input.Items)...)
	}

	if input.PickupAddress != nil && *input.PickupAddress == "" {
		errs = append(errs, models.FieldError{Field: "pickupAddress", Message: "Pickup address is required"})
	}

	if input.PickupDate != nil && !validDateTime(*input.PickupDate) {
		errs = append(errs, models.FieldError{Field: "pickupDate", Message: "Invalid date format"})
	}

	if input.Status != nil && !Status(*input.Status).Valid() {
		errs = append(errs, models.FieldError{Field: "status", Message: "Invalid status"})
	}

	return errs
}

// validateItems validates the items array and each item within it.
func validateItems(items []models.DonationItem) []models.FieldError {
	if len(items) == 0 {
		return []models.FieldError{{Field: "items", Message: "At least one item is required"}}
	}

	var errs []models.FieldError
	for i, item := range items {
		if item.Name == "" {
			errs = append(errs, models.FieldError{
				Field:   fmt.Sprintf("items.%d.name", i),
				Message: "Item name is required",
			})
		}
		if item.Quantity <= 0 {
			errs = append(errs, models.FieldError{
				Field:   fmt.Sprintf("items.%d.quantity", i),
				Message: "Quantity must be positive",
			})
		}
		if !Unit(item.Unit).Valid() {
			errs = append(errs, models.FieldError{
				Field:   fmt.Sprintf("items.%d.unit", i),
				Message: "Invalid unit",
			})
		}
	}
	return errs
}

// validDateTime reports whether s parses as an ISO-8601 date-time.
func validDateTime(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return false
	}
	return true
}

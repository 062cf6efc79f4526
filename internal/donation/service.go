package donation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/veggierescue/veggierescue/internal/api/models"
)

// Service provides donation operations.
type Service struct {
	repo Repository
}

// NewService creates a new donation service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves all donations, newest first.
func (s *Service) List(ctx context.Context) ([]models.Donation, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Donation, 0, len(stored))
	for _, d := range stored {
		result = append(result, toAPIDonation(d))
	}
	return result, nil
}

// Get retrieves a donation by ID. Returns ErrDonationNotFound for unknown IDs.
func (s *Service) Get(ctx context.Context, id string) (*models.Donation, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := toAPIDonation(d)
	return &result, nil
}

// Create validates the payload, assigns a fresh ID, sets the initial
// pending status, stamps both timestamps to the same instant, and stores
// the donation.
func (s *Service) Create(ctx context.Context, input *models.CreateDonationRequest) (*models.Donation, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	d := &Donation{
		ID:            uuid.New().String(),
		DonorName:     input.DonorName,
		DonorEmail:    input.DonorEmail,
		DonorPhone:    input.DonorPhone,
		Items:         toDomainItems(input.Items),
		PickupAddress: input.PickupAddress,
		PickupDate:    input.PickupDate,
		Status:        StatusPending,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	result := toAPIDonation(d)
	return &result, nil
}

// Update merges the provided fields onto the existing donation. Unspecified
// fields keep their prior values; there is no way to unset an optional field.
// Only the last-update timestamp advances.
func (s *Service) Update(ctx context.Context, id string, input *models.UpdateDonationRequest) (*models.Donation, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if fieldErrors := s.validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if input.DonorName != nil {
		d.DonorName = *input.DonorName
	}
	if input.DonorEmail != nil {
		d.DonorEmail = *input.DonorEmail
	}
	if input.DonorPhone != nil {
		d.DonorPhone = input.DonorPhone
	}
	if input.Items != nil {
		d.Items = toDomainItems(*input.Items)
	}
	if input.PickupAddress != nil {
		d.PickupAddress = *input.PickupAddress
	}
	if input.PickupDate != nil {
		d.PickupDate = *input.PickupDate
	}
	if input.Status != nil {
		d.Status = Status(*input.Status)
	}
	if input.Notes != nil {
		d.Notes = input.Notes
	}

	// Guarantee the update timestamp strictly advances even if the clock
	// hasn't ticked since the last write.
	now := time.Now()
	if !now.After(d.UpdatedAt) {
		now = d.UpdatedAt.Add(time.Nanosecond)
	}
	d.UpdatedAt = now

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	result := toAPIDonation(d)
	return &result, nil
}

// Delete removes a donation. Returns ErrDonationNotFound for unknown IDs, so
// deleting twice fails the same way both times.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// toAPIDonation converts a domain Donation to an API Donation.
func toAPIDonation(d *Donation) models.Donation {
	items := make([]models.DonationItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, models.DonationItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     string(item.Unit),
		})
	}

	return models.Donation{
		ID:            d.ID,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		DonorPhone:    d.DonorPhone,
		Items:         items,
		PickupAddress: d.PickupAddress,
		PickupDate:    d.PickupDate,
		Status:        string(d.Status),
		Notes:         d.Notes,
		CreatedAt:     models.Timestamp(d.CreatedAt),
		UpdatedAt:     models.Timestamp(d.UpdatedAt),
	}
}

func toDomainItems(items []models.DonationItem) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		result = append(result, Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     Unit(item.Unit),
		})
	}
	return result
}

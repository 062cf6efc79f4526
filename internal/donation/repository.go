package donation

import "context"

// Repository defines the interface for donation data access.
type Repository interface {
	// List retrieves all donations, newest first. Donations created at the
	// same instant are returned in reverse insertion order.
	List(ctx context.Context) ([]*Donation, error)

	// Get retrieves a donation by ID.
	// Returns ErrDonationNotFound if the donation doesn't exist.
	Get(ctx context.Context, id string) (*Donation, error)

	// Create stores a new donation.
	Create(ctx context.Context, d *Donation) error

	// Update replaces an existing donation.
	// Returns ErrDonationNotFound if the donation doesn't exist.
	Update(ctx context.Context, d *Donation) error

	// Delete removes a donation by ID.
	// Returns ErrDonationNotFound if the donation doesn't exist.
	Delete(ctx context.Context, id string) error
}

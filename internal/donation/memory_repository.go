package donation

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository. The
// donation collection lives for the process lifetime; there is no
// persistence across restarts.
type InMemoryRepository struct {
	mu        sync.RWMutex
	donations map[string]*storedDonation
	seq       uint64
}

// storedDonation pairs a donation with its insertion sequence so listing
// can break creation-time ties in reverse insertion order.
type storedDonation struct {
	donation Donation
	seq      uint64
}

// NewInMemoryRepository creates a new in-memory donation repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		donations: make(map[string]*storedDonation),
	}
}

// List retrieves all donations ordered by creation time descending.
func (r *InMemoryRepository) List(_ context.Context) ([]*Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := make([]*storedDonation, 0, len(r.donations))
	for _, s := range r.donations {
		stored = append(stored, s)
	}

	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].donation.CreatedAt.Equal(stored[j].donation.CreatedAt) {
			return stored[i].donation.CreatedAt.After(stored[j].donation.CreatedAt)
		}
		return stored[i].seq > stored[j].seq
	})

	result := make([]*Donation, 0, len(stored))
	for _, s := range stored {
		cpy := s.donation
		result = append(result, &cpy)
	}
	return result, nil
}

// Get retrieves a donation by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.donations[id]
	if !ok {
		return nil, ErrDonationNotFound
	}

	// Return a copy
	cpy := s.donation
	return &cpy, nil
}

// Create stores a new donation.
func (r *InMemoryRepository) Create(_ context.Context, d *Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.donations[d.ID] = &storedDonation{donation: *d, seq: r.seq}
	return nil
}

// Update replaces an existing donation, keeping its insertion sequence.
func (r *InMemoryRepository) Update(_ context.Context, d *Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.donations[d.ID]
	if !ok {
		return ErrDonationNotFound
	}

	s.donation = *d
	return nil
}

// Delete removes a donation by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.donations[id]; !ok {
		return ErrDonationNotFound
	}

	delete(r.donations, id)
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)

// Package donation provides donation management services.
package donation

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrDonationNotFound = errors.New("donation not found")
)

// Status is the lifecycle status of a donation.
type Status string

// Donation lifecycle statuses. pending is the initial status; transitions
// are currently unrestricted (any status may be patched to any other).
const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Unit is a unit of measure for a donation item.
type Unit string

// Units of measure.
const (
	UnitPounds    Unit = "lb"
	UnitKilograms Unit = "kg"
	UnitItems     Unit = "items"
	UnitBoxes     Unit = "boxes"
)

// Valid reports whether u is a member of the closed unit set.
func (u Unit) Valid() bool {
	switch u {
	case UnitPounds, UnitKilograms, UnitItems, UnitBoxes:
		return true
	}
	return false
}

// Item is one named quantity of produce.
type Item struct {
	Name     string
	Quantity float64
	Unit     Unit
}

// Donation represents a pledged pickup of produce items from a donor.
type Donation struct {
	ID            string
	DonorName     string
	DonorEmail    string
	DonorPhone    *string
	Items         []Item
	PickupAddress string
	// PickupDate is kept as the ISO-8601 string the donor submitted so the
	// original formatting survives the round trip.
	PickupDate string
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

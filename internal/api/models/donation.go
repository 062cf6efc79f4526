package models

// DonationItem is one named quantity of produce with a unit of measure.
type DonationItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Donation is the API representation of a donation.
type Donation struct {
	ID            string         `json:"id"`
	DonorName     string         `json:"donorName"`
	DonorEmail    string         `json:"donorEmail"`
	DonorPhone    *string        `json:"donorPhone,omitempty"`
	Items         []DonationItem `json:"items"`
	PickupAddress string         `json:"pickupAddress"`
	PickupDate    string         `json:"pickupDate"`
	Status        string         `json:"status"`
	Notes         *string        `json:"notes,omitempty"`
	CreatedAt     Timestamp      `json:"createdAt"`
	UpdatedAt     Timestamp      `json:"updatedAt"`
}

// CreateDonationRequest is the payload for POST /donations.
type CreateDonationRequest struct {
	DonorName     string         `json:"donorName"`
	DonorEmail    string         `json:"donorEmail"`
	DonorPhone    *string        `json:"donorPhone,omitempty"`
	Items         []DonationItem `json:"items"`
	PickupAddress string         `json:"pickupAddress"`
	PickupDate    string         `json:"pickupDate"`
	Notes         *string        `json:"notes,omitempty"`
}

// UpdateDonationRequest is the payload for PATCH /donations/{id}.
// Every field is optional; nil means "leave the prior value".
type UpdateDonationRequest struct {
	DonorName     *string         `json:"donorName,omitempty"`
	DonorEmail    *string         `json:"donorEmail,omitempty"`
	DonorPhone    *string         `json:"donorPhone,omitempty"`
	Items         *[]DonationItem `json:"items,omitempty"`
	PickupAddress *string         `json:"pickupAddress,omitempty"`
	PickupDate    *string         `json:"pickupDate,omitempty"`
	Status        *string         `json:"status,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

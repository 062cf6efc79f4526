// Package models provides request and response models for the Veggie Rescue API.
package models

import "time"

// Timestamp is a helper type for time.Time with custom JSON formatting.
// RFC3339Nano keeps sub-second precision so update timestamps remain
// strictly ordered.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Remove quotes
	s := string(data[1 : len(data)-1])
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Message is a simple message response body.
type Message struct {
	Message string `json:"message"`
}

// Health is the health check response body.
type Health struct {
	Status string `json:"status"`
}

package models

import "time"

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	RegisteredAt time.Time          `json:"registered_at"`
	Status       RegistrationStatus `json:"status"`
}

// Active reports whether the registration still claims a spot.
// Cancelled registrations are kept for history, never removed.
func (r Registration) Active() bool {
	return r.Status != RegistrationCancelled
}

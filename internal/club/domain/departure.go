package domain

import "time"

// Departure records a member who permanently deleted their registration.
// The log is append-only; reads are capped to the most recent N entries.
type Departure struct {
	ID     string    `json:"id"` // ULID
	DNI    string    `json:"dni"`
	Name   string    `json:"name"`
	LeftAt time.Time `json:"leftAt"`
}

package models

import "time"

// ReservationSession carries a user's pending slot selection between the
// availability query and the final confirmation step.
type ReservationSession struct {
	Date            string        `json:"date"` // "2006-01-02"
	DurationMinutes int           `json:"durationMinutes"`
	Scope           ResourceScope `json:"scope"`
	Slot            string        `json:"slot"` // "HH:mm"
	CreatedAt       time.Time     `json:"createdAt"`
}

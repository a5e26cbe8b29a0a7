package models

// Booking statuses as stored by the reservation backend.
// Status 5 is reserved upstream and never observed in practice.
const (
	StatusRejected  = 0
	StatusScheduled = 1
	StatusApproved  = 2
	StatusAttended  = 3
	StatusNoShow    = 4
	StatusCancelled = 6
)

// Booking is a reservation record as returned by the commitment store.
// DateScheduled is the authoritative calendar date; the date portion of
// StartTime/EndTime may be a placeholder, only their time-of-day is trusted.
type Booking struct {
	ID            int64  `bson:"id_booking" json:"id_booking"`
	WorkspaceID   int    `bson:"id_workspace" json:"id_workspace"`
	Status        int    `bson:"status" json:"status"`
	DateScheduled string `bson:"date_scheduled" json:"date_scheduled"` // "2006-01-02"
	StartTime     string `bson:"start_time" json:"start_time"`         // RFC 3339 or "HH:mm"
	EndTime       string `bson:"end_time" json:"end_time"`
}

// Event is a scheduled campus event occupying one or more workspaces.
// Unlike bookings, both date and time of its timestamps are authoritative.
type Event struct {
	ID            int64  `bson:"id_event" json:"id_event"`
	WorkspaceID   int    `bson:"id_workspace" json:"id_workspace"`
	Title         string `bson:"title,omitempty" json:"title,omitempty"`
	StartDateTime string `bson:"start_datetime" json:"start_datetime"` // RFC 3339
	EndDateTime   string `bson:"end_datetime" json:"end_datetime"`
}

package models

// RSVP defines the attendance model based on the 'rsvps' table.
// The (event_id, user_email) pair is unique.
type RSVP struct {
	ID          int64  `json:"id" db:"id"`
	EventID     int64  `json:"eventId" db:"event_id"`
	UserEmail   string `json:"userEmail" db:"user_email"`
	FindVaquero bool   `json:"findVaquero" db:"find_vaquero"`
}

package models

import "time"

// Comment defines the comment model based on the 'comments' table.
// Comments are append-only and listed newest-first.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	Text      string    `json:"text" db:"comment_text"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

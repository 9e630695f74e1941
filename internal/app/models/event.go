package models

import "time"

// DateLayout is the calendar-date format used on every event surface
const DateLayout = "2006-01-02"

// Event defines the event model based on the 'events' table
type Event struct {
	ID                int64     `json:"id" db:"id" example:"1"`
	Name              string    `json:"name" db:"name" example:"Homecoming Bonfire"`
	Date              time.Time `json:"date" db:"date"`
	Location          string    `json:"location" db:"location" example:"Student Union Lawn"`
	Description       string    `json:"description" db:"description"`
	OrganizationEmail string    `json:"organizationEmail" db:"organization_email"`
}

// DateString renders the event date in the canonical calendar-date format
func (e *Event) DateString() string {
	return e.Date.Format(DateLayout)
}

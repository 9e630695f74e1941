package dto

import "github.com/lucianaf/vspotlight/internal/pkg/calendar"

// CalendarRequest represents the month to display
type CalendarRequest struct {
	Year  int `form:"year" binding:"omitempty,min=1"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// CalendarResponse represents the month grid with event markers
type CalendarResponse struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	MonthLabel string          `json:"monthLabel" example:"September 2026"`
	Weeks      []calendar.Week `json:"weeks"`
	Prev       MonthRef        `json:"prev"`
	Next       MonthRef        `json:"next"`
}

// MonthRef points at an adjacent month for navigation
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CalendarDayResponse represents the events on a single date
type CalendarDayResponse struct {
	Date   string          `json:"date" example:"2026-09-15"`
	Events []EventResponse `json:"events"`
}

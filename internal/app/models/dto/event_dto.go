package dto

import "github.com/lucianaf/vspotlight/internal/app/models"

// CreateEventRequest represents new event data
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required" example:"2026-09-15"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateEventRequest represents event update data
type UpdateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required" example:"2026-09-15"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// EventResponse represents a single event
type EventResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date" example:"2026-09-15"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Organization string `json:"organization"`
	RsvpCount    int64  `json:"rsvpCount"`
	// Rsvped is only set on the detail view, for the requesting user
	Rsvped *bool `json:"rsvped,omitempty"`
}

// EventListResponse represents a page of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	PaginationInfo
}

// EventFilterRequest represents event listing parameters
type EventFilterRequest struct {
	Organization *string `form:"organization,omitempty"`
	Page         int     `form:"page,default=1" binding:"min=1"`
	PageSize     int     `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// FromEvent converts a models.Event to an EventResponse
func FromEvent(event *models.Event) EventResponse {
	if event == nil {
		return EventResponse{}
	}
	return EventResponse{
		ID:           event.ID,
		Name:         event.Name,
		Date:         event.DateString(),
		Location:     event.Location,
		Description:  event.Description,
		Organization: event.OrganizationEmail,
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
	"github.com/lucianaf/vspotlight/internal/pkg/calendar"
	"github.com/lucianaf/vspotlight/internal/pkg/validation"
)

// CalendarService defines the interface for the calendar view
type CalendarService interface {
	GetMonth(ctx context.Context, year, month int) (*dto.CalendarResponse, error)
	GetDay(ctx context.Context, date string) (*dto.CalendarDayResponse, error)
}

// calendarServiceImpl implements the CalendarService interface
type calendarServiceImpl struct {
	eventRepo *repositories.EventRepository
	rsvpRepo  *repositories.RSVPRepository
	now       func() time.Time
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(eventRepo *repositories.EventRepository, rsvpRepo *repositories.RSVPRepository) CalendarService {
	return &calendarServiceImpl{
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		now:       time.Now,
	}
}

// GetMonth lays out the requested month as Sunday-start weeks with event
// markers. Zero year and month default to the current month.
func (s *calendarServiceImpl) GetMonth(ctx context.Context, year, month int) (*dto.CalendarResponse, error) {
	var m calendar.Month
	switch {
	case year == 0 && month == 0:
		m = calendar.CurrentMonth(s.now())
	case year < 1 || month < 1 || month > 12:
		return nil, fmt.Errorf("%w: month must be 1-12", apperrors.ErrInvalidDate)
	default:
		m = calendar.Month{Year: year, Month: time.Month(month)}
	}

	events, err := s.eventRepo.GetEventsInMonth(ctx, m.Year, m.Month)
	if err != nil {
		return nil, fmt.Errorf("error retrieving month events: %w", err)
	}

	weeks := calendar.Grid(m, calendar.MarkedDates(events))
	prev := m.Prev()
	next := m.Next()

	return &dto.CalendarResponse{
		Year:       m.Year,
		Month:      int(m.Month),
		MonthLabel: fmt.Sprintf("%s %d", m.Month.String(), m.Year),
		Weeks:      weeks,
		Prev:       dto.MonthRef{Year: prev.Year, Month: int(prev.Month)},
		Next:       dto.MonthRef{Year: next.Year, Month: int(next.Month)},
	}, nil
}

// GetDay retrieves the events on one calendar date with their RSVP counts
func (s *calendarServiceImpl) GetDay(ctx context.Context, date string) (*dto.CalendarDayResponse, error) {
	parsed, err := validation.ParseCalendarDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidDate)
	}

	events, err := s.eventRepo.GetEventsOnDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("error retrieving day events: %w", err)
	}

	ids := make([]int64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	counts, err := s.rsvpRepo.CountByEventIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error counting RSVPs: %w", err)
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		resp := dto.FromEvent(event)
		resp.RsvpCount = counts[event.ID]
		responses = append(responses, resp)
	}

	return &dto.CalendarDayResponse{
		Date:   parsed.Format(models.DateLayout),
		Events: responses,
	}, nil
}

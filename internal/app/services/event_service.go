package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appauth "github.com/lucianaf/vspotlight/internal/app/auth"
	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
	"github.com/lucianaf/vspotlight/internal/pkg/helpers"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
	"github.com/lucianaf/vspotlight/internal/pkg/validation"
)

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, actorEmail string, actorRole models.Role, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEventByID(ctx context.Context, id int64, viewerEmail string) (*dto.EventResponse, error)
	GetAllEvents(ctx context.Context, page, size int) (*dto.EventListResponse, error)
	GetEventsByOrganization(ctx context.Context, organizationEmail string) ([]dto.EventResponse, error)
	GetMyEvents(ctx context.Context, userEmail string) ([]dto.EventResponse, error)
	UpdateEvent(ctx context.Context, actorEmail string, actorRole models.Role, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, actorEmail string, actorRole models.Role, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	rsvpRepo  *repositories.RSVPRepository
	guard     *appauth.Guard
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository, rsvpRepo *repositories.RSVPRepository, guard *appauth.Guard) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		guard:     guard,
	}
}

// buildEvent validates event data and converts it to a model
func buildEvent(name, date, location, description string) (*models.Event, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("event name cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return nil, apperrors.NewValidationError("event location cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("event description cannot be empty")
	}

	parsed, err := validation.ParseCalendarDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidDate)
	}

	return &models.Event{
		Name:        strings.TrimSpace(name),
		Date:        parsed,
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
	}, nil
}

// CreateEvent publishes a new event under the acting organization
func (s *eventServiceImpl) CreateEvent(ctx context.Context, actorEmail string, actorRole models.Role, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !s.guard.CanCreateEvents(actorRole) {
		return nil, apperrors.NewForbiddenError("only organization accounts can create events")
	}

	event, err := buildEvent(req.Name, req.Date, req.Location, req.Description)
	if err != nil {
		return nil, err
	}
	event.OrganizationEmail = actorEmail

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	event.ID = id

	logger.Info().Int64("eventID", id).Str("organization", actorEmail).Msg("Event created")

	resp := dto.FromEvent(event)
	return &resp, nil
}

// GetEventByID retrieves a single event with its RSVP count and whether the
// viewer has RSVP'd
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64, viewerEmail string) (*dto.EventResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}

	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	count, err := s.rsvpRepo.CountForEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting RSVPs: %w", err)
	}

	rsvped, err := s.rsvpRepo.Exists(ctx, id, viewerEmail)
	if err != nil {
		return nil, fmt.Errorf("error checking RSVP: %w", err)
	}

	resp := dto.FromEvent(event)
	resp.RsvpCount = count
	resp.Rsvped = &rsvped
	return &resp, nil
}

// GetAllEvents retrieves one page of events, soonest first
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, page, size int) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	events, err := s.eventRepo.GetAllEvents(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}

	total, err := s.eventRepo.CountEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting events: %w", err)
	}

	responses, err := s.withRsvpCounts(ctx, events)
	if err != nil {
		return nil, err
	}

	return &dto.EventListResponse{
		Events:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetEventsByOrganization retrieves every event one organization has published
func (s *eventServiceImpl) GetEventsByOrganization(ctx context.Context, organizationEmail string) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.GetEventsByOrganization(ctx, organizationEmail)
	if err != nil {
		return nil, fmt.Errorf("error retrieving organization events: %w", err)
	}
	return s.withRsvpCounts(ctx, events)
}

// GetMyEvents retrieves the events the user has RSVP'd to
func (s *eventServiceImpl) GetMyEvents(ctx context.Context, userEmail string) ([]dto.EventResponse, error) {
	ids, err := s.rsvpRepo.GetEventIDsForUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user RSVPs: %w", err)
	}

	events, err := s.eventRepo.GetEventsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return s.withRsvpCounts(ctx, events)
}

// UpdateEvent updates an event owned by the acting organization
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, actorEmail string, actorRole models.Role, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	existing, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	if !s.guard.CanModifyEvent(actorEmail, actorRole, existing) {
		return nil, apperrors.NewForbiddenError("only the publishing organization can modify this event")
	}

	updated, err := buildEvent(req.Name, req.Date, req.Location, req.Description)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.OrganizationEmail = existing.OrganizationEmail

	if err := s.eventRepo.UpdateEvent(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	resp := dto.FromEvent(updated)
	return &resp, nil
}

// DeleteEvent removes an event owned by the acting organization
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, actorEmail string, actorRole models.Role, id int64) error {
	existing, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error retrieving event: %w", err)
	}

	if !s.guard.CanModifyEvent(actorEmail, actorRole, existing) {
		return apperrors.NewForbiddenError("only the publishing organization can delete this event")
	}

	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error deleting event: %w", err)
	}

	logger.Info().Int64("eventID", id).Str("organization", actorEmail).Msg("Event deleted")
	return nil
}

// withRsvpCounts maps events to responses with their RSVP counts attached
func (s *eventServiceImpl) withRsvpCounts(ctx context.Context, events []*models.Event) ([]dto.EventResponse, error) {
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
	return responses, nil
}

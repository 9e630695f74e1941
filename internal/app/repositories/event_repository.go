package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// Event error types
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = ErrNotFound
)

// EventRepository handles event database operations
type EventRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EventRepository) WithTx(tx pgx.Tx) *EventRepository {
	return &EventRepository{db: tx, sb: r.sb}
}

// CreateEvent inserts a new event and returns its ID
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("name", "date", "location", "description", "organization_email").
		Values(event.Name, event.Date, event.Location, event.Description, event.OrganizationEmail).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetEventByID retrieves an event by ID
func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get event by ID SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event := &models.Event{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&event.ID, &event.Name, &event.Date, &event.Location, &event.Description, &event.OrganizationEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// GetAllEvents retrieves one page of events ordered by date, soonest first
func (r *EventRepository) GetAllEvents(ctx context.Context, offset uint64, limit int) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		OrderBy("date ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all events SQL")
		return nil, fmt.Errorf("failed to build get all events query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// CountEvents returns the total number of events
func (r *EventRepository) CountEvents(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("events").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count events SQL")
		return 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count events query")
		return 0, fmt.Errorf("error counting events: %w", err)
	}

	return count, nil
}

// GetEventsByOrganization retrieves all events created by one organization
func (r *EventRepository) GetEventsByOrganization(ctx context.Context, organizationEmail string) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		Where(squirrel.Eq{"organization_email": organizationEmail}).
		OrderBy("date ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get events by organization SQL")
		return nil, fmt.Errorf("failed to build get events by organization query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// GetEventsInMonth retrieves all events falling within the given month
func (r *EventRepository) GetEventsInMonth(ctx context.Context, year int, month time.Month) ([]*models.Event, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.Lt{"date": end}).
		OrderBy("date ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get events in month SQL")
		return nil, fmt.Errorf("failed to build get events in month query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// GetEventsOnDate retrieves all events on one calendar date
func (r *EventRepository) GetEventsOnDate(ctx context.Context, date time.Time) ([]*models.Event, error) {
	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		Where(squirrel.Eq{"date": date}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get events on date SQL")
		return nil, fmt.Errorf("failed to build get events on date query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// GetEventsByIDs retrieves the given events ordered by date, soonest first.
// Missing IDs are silently skipped.
func (r *EventRepository) GetEventsByIDs(ctx context.Context, ids []int64) ([]*models.Event, error) {
	if len(ids) == 0 {
		return []*models.Event{}, nil
	}

	sql, args, err := r.sb.Select("id", "name", "date", "location", "description", "organization_email").
		From("events").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("date ASC", "id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get events by IDs SQL")
		return nil, fmt.Errorf("failed to build get events by IDs query: %w", err)
	}

	return r.queryEvents(ctx, sql, args)
}

// UpdateEvent updates an existing event
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"name":        event.Name,
			"date":        event.Date,
			"location":    event.Location,
			"description": event.Description,
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update event SQL")
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// DeleteEvent deletes an event by ID. Comments, RSVPs and matches go with it
// via ON DELETE CASCADE.
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete event SQL")
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, sql string, args []interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.Name, &event.Date, &event.Location, &event.Description, &event.OrganizationEmail); err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating event rows")
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/pkg/dberrors"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// RSVP error types
var (
	// ErrRSVPNotFound is returned when no RSVP exists for the user and event.
	ErrRSVPNotFound = ErrNotFound
	// ErrAlreadyRsvped is returned on a second RSVP for the same event.
	ErrAlreadyRsvped = errors.New("user has already RSVP'd to this event")
)

// RSVPRepository handles RSVP database operations
type RSVPRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewRSVPRepository creates a new RSVPRepository
func NewRSVPRepository(db DBTX) *RSVPRepository {
	return &RSVPRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RSVPRepository) WithTx(tx pgx.Tx) *RSVPRepository {
	return &RSVPRepository{db: tx, sb: r.sb}
}

// CreateRSVP inserts a new RSVP. The unique (event_id, user_email) constraint
// rejects a second RSVP for the same event.
func (r *RSVPRepository) CreateRSVP(ctx context.Context, rsvp *models.RSVP) (int64, error) {
	sql, args, err := r.sb.Insert("rsvps").
		Columns("event_id", "user_email", "find_vaquero").
		Values(rsvp.EventID, rsvp.UserEmail, rsvp.FindVaquero).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create RSVP SQL")
		return 0, fmt.Errorf("failed to build create RSVP query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrAlreadyRsvped
		}
		logger.Error().Err(err).Int64("eventID", rsvp.EventID).Str("email", rsvp.UserEmail).Msg("Error executing create RSVP query")
		return 0, fmt.Errorf("error creating RSVP: %w", err)
	}

	return id, nil
}

// DeleteRSVP removes a user's RSVP for an event
func (r *RSVPRepository) DeleteRSVP(ctx context.Context, eventID int64, userEmail string) error {
	sql, args, err := r.sb.Delete("rsvps").
		Where(squirrel.Eq{"event_id": eventID, "user_email": userEmail}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete RSVP SQL")
		return fmt.Errorf("failed to build delete RSVP query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Str("email", userEmail).Msg("Error executing delete RSVP query")
		return fmt.Errorf("error deleting RSVP: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrRSVPNotFound
	}

	return nil
}

// Exists reports whether the user has RSVP'd to the event
func (r *RSVPRepository) Exists(ctx context.Context, eventID int64, userEmail string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("rsvps").
		Where(squirrel.Eq{"event_id": eventID, "user_email": userEmail}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building RSVP exists SQL")
		return false, fmt.Errorf("failed to build RSVP existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("eventID", eventID).Str("email", userEmail).Msg("Error checking RSVP existence")
		return false, fmt.Errorf("error checking RSVP existence: %w", err)
	}

	return exists, nil
}

// CountForEvent returns the number of RSVPs on an event
func (r *RSVPRepository) CountForEvent(ctx context.Context, eventID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("rsvps").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count RSVPs SQL")
		return 0, fmt.Errorf("failed to build count RSVPs query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error executing count RSVPs query")
		return 0, fmt.Errorf("error counting RSVPs: %w", err)
	}

	return count, nil
}

// CountByEventIDs returns RSVP counts keyed by event ID. Events with no RSVPs
// are absent from the map.
func (r *RSVPRepository) CountByEventIDs(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	sql, args, err := r.sb.Select("event_id", "COUNT(*)").
		From("rsvps").
		Where(squirrel.Eq{"event_id": eventIDs}).
		GroupBy("event_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count RSVPs by event SQL")
		return nil, fmt.Errorf("failed to build count RSVPs by event query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count RSVPs by event query")
		return nil, fmt.Errorf("error counting RSVPs by event: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID, count int64
		if err := rows.Scan(&eventID, &count); err != nil {
			logger.Error().Err(err).Msg("Error scanning RSVP count row")
			return nil, fmt.Errorf("error scanning RSVP count row: %w", err)
		}
		counts[eventID] = count
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating RSVP count rows")
		return nil, fmt.Errorf("error iterating RSVP count rows: %w", err)
	}

	return counts, nil
}

// GetEventIDsForUser returns the IDs of events the user has RSVP'd to
func (r *RSVPRepository) GetEventIDsForUser(ctx context.Context, userEmail string) ([]int64, error) {
	sql, args, err := r.sb.Select("event_id").
		From("rsvps").
		Where(squirrel.Eq{"user_email": userEmail}).
		OrderBy("event_id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user RSVPs SQL")
		return nil, fmt.Errorf("failed to build get user RSVPs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", userEmail).Msg("Error executing get user RSVPs query")
		return nil, fmt.Errorf("error querying user RSVPs: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			logger.Error().Err(err).Msg("Error scanning RSVP row")
			return nil, fmt.Errorf("error scanning RSVP row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating RSVP rows")
		return nil, fmt.Errorf("error iterating RSVP rows: %w", err)
	}

	return ids, nil
}

// GetMatchCandidates returns attendees eligible to be matched with the given
// user: RSVP'd with find_vaquero set, not the user themselves, and not already
// on either side of a match for this event.
func (r *RSVPRepository) GetMatchCandidates(ctx context.Context, eventID int64, excludeEmail string) ([]*models.MatchCandidate, error) {
	sql, args, err := r.sb.Select("u.email", "u.first_name", "u.last_name", "u.major").
		From("rsvps rv").
		Join("studentuser u ON u.email = rv.user_email").
		Where(squirrel.Eq{"rv.event_id": eventID, "rv.find_vaquero": true}).
		Where(squirrel.NotEq{"u.email": excludeEmail}).
		Where(squirrel.Expr("u.email NOT IN (SELECT user1_email FROM vaquero_matches WHERE event_id = ?)", eventID)).
		Where(squirrel.Expr("u.email NOT IN (SELECT user2_email FROM vaquero_matches WHERE event_id = ?)", eventID)).
		OrderBy("u.email ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building match candidates SQL")
		return nil, fmt.Errorf("failed to build match candidates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error executing match candidates query")
		return nil, fmt.Errorf("error querying match candidates: %w", err)
	}
	defer rows.Close()

	candidates := []*models.MatchCandidate{}
	for rows.Next() {
		candidate := &models.MatchCandidate{}
		if err := rows.Scan(&candidate.Email, &candidate.FirstName, &candidate.LastName, &candidate.Major); err != nil {
			logger.Error().Err(err).Msg("Error scanning match candidate row")
			return nil, fmt.Errorf("error scanning match candidate row: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating match candidate rows")
		return nil, fmt.Errorf("error iterating match candidate rows: %w", err)
	}

	return candidates, nil
}

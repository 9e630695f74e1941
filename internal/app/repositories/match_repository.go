package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// MatchRepository handles vaquero match database operations
type MatchRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db DBTX) *MatchRepository {
	return &MatchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MatchRepository) WithTx(tx pgx.Tx) *MatchRepository {
	return &MatchRepository{db: tx, sb: r.sb}
}

// CreateMatch records a pairing for an event and returns its ID
func (r *MatchRepository) CreateMatch(ctx context.Context, match *models.VaqueroMatch) (int64, error) {
	sql, args, err := r.sb.Insert("vaquero_matches").
		Columns("event_id", "user1_email", "user2_email").
		Values(match.EventID, match.User1Email, match.User2Email).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create match SQL")
		return 0, fmt.Errorf("failed to build create match query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", match.EventID).Msg("Error executing create match query")
		return 0, fmt.Errorf("error creating match: %w", err)
	}

	return id, nil
}

// GetMatchForUser returns the match a user belongs to for an event, if any
func (r *MatchRepository) GetMatchForUser(ctx context.Context, eventID int64, userEmail string) (*models.VaqueroMatch, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user1_email", "user2_email").
		From("vaquero_matches").
		Where(squirrel.Eq{"event_id": eventID}).
		Where(squirrel.Or{
			squirrel.Eq{"user1_email": userEmail},
			squirrel.Eq{"user2_email": userEmail},
		}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get match for user SQL")
		return nil, fmt.Errorf("failed to build get match query: %w", err)
	}

	match := &models.VaqueroMatch{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&match.ID, &match.EventID, &match.User1Email, &match.User2Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("eventID", eventID).Str("email", userEmail).Msg("Error scanning match row")
		return nil, fmt.Errorf("error getting match for user: %w", err)
	}

	return match, nil
}

// GetMatchesForEvent returns all matches recorded for an event
func (r *MatchRepository) GetMatchesForEvent(ctx context.Context, eventID int64) ([]*models.VaqueroMatch, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user1_email", "user2_email").
		From("vaquero_matches").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get matches for event SQL")
		return nil, fmt.Errorf("failed to build get matches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error executing get matches query")
		return nil, fmt.Errorf("error querying matches: %w", err)
	}
	defer rows.Close()

	matches := []*models.VaqueroMatch{}
	for rows.Next() {
		match := &models.VaqueroMatch{}
		if err := rows.Scan(&match.ID, &match.EventID, &match.User1Email, &match.User2Email); err != nil {
			logger.Error().Err(err).Msg("Error scanning match row")
			return nil, fmt.Errorf("error scanning match row: %w", err)
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating match rows")
		return nil, fmt.Errorf("error iterating match rows: %w", err)
	}

	return matches, nil
}

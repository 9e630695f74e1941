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

// CommentRepository handles event comment database operations
type CommentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateComment inserts a new comment and returns its ID and timestamp
func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) (int64, error) {
	sql, args, err := r.sb.Insert("comments").
		Columns("event_id", "user_email", "comment_text").
		Values(comment.EventID, comment.UserEmail, comment.Text).
		Suffix("RETURNING id, timestamp").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create comment SQL")
		return 0, fmt.Errorf("failed to build create comment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.Timestamp)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", comment.EventID).Msg("Error executing create comment query")
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	return comment.ID, nil
}

// GetCommentsByEventID retrieves all comments on an event, newest first
func (r *CommentRepository) GetCommentsByEventID(ctx context.Context, eventID int64) ([]*models.Comment, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_email", "comment_text", "timestamp").
		From("comments").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("timestamp DESC", "id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get comments SQL")
		return nil, fmt.Errorf("failed to build get comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error executing get comments query")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.EventID, &comment.UserEmail, &comment.Text, &comment.Timestamp); err != nil {
			logger.Error().Err(err).Msg("Error scanning comment row")
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating comment rows")
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// DeleteComment deletes a comment by ID
func (r *CommentRepository) DeleteComment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete comment SQL")
		return fmt.Errorf("failed to build delete comment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("commentID", id).Msg("Error executing delete comment query")
		return fmt.Errorf("error deleting comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetCommentByID retrieves a single comment
func (r *CommentRepository) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_email", "comment_text", "timestamp").
		From("comments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get comment by ID SQL")
		return nil, fmt.Errorf("failed to build get comment query: %w", err)
	}

	comment := &models.Comment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.EventID, &comment.UserEmail, &comment.Text, &comment.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("commentID", id).Msg("Error scanning comment row")
		return nil, fmt.Errorf("error getting comment by ID: %w", err)
	}

	return comment, nil
}

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

// Organization request error types
var (
	// ErrOrgRequestNotFound is returned when a request is not found.
	ErrOrgRequestNotFound = ErrNotFound
	// ErrOrgRequestPendingExists is returned when the user already has an
	// unresolved request.
	ErrOrgRequestPendingExists = errors.New("a pending organization request already exists for this user")
)

// OrgRequestRepository handles organization request database operations
type OrgRequestRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewOrgRequestRepository creates a new OrgRequestRepository
func NewOrgRequestRepository(db DBTX) *OrgRequestRepository {
	return &OrgRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *OrgRequestRepository) WithTx(tx pgx.Tx) *OrgRequestRepository {
	return &OrgRequestRepository{db: tx, sb: r.sb}
}

// CreateRequest inserts a new pending organization request
func (r *OrgRequestRepository) CreateRequest(ctx context.Context, request *models.OrgRequest) (int64, error) {
	sql, args, err := r.sb.Insert("org_requests").
		Columns("name", "email", "organization", "status").
		Values(request.Name, request.Email, request.Organization, request.Status).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create org request SQL")
		return 0, fmt.Errorf("failed to build create org request query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("email", request.Email).Msg("Error executing create org request query")
		return 0, fmt.Errorf("error creating org request: %w", err)
	}

	return id, nil
}

// GetRequestByID retrieves an organization request by ID
func (r *OrgRequestRepository) GetRequestByID(ctx context.Context, id int64) (*models.OrgRequest, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "organization", "status").
		From("org_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get org request by ID SQL")
		return nil, fmt.Errorf("failed to build get org request query: %w", err)
	}

	request := &models.OrgRequest{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&request.ID, &request.Name, &request.Email, &request.Organization, &request.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrgRequestNotFound
		}
		logger.Error().Err(err).Int64("requestID", id).Msg("Error scanning org request row")
		return nil, fmt.Errorf("error getting org request by ID: %w", err)
	}

	return request, nil
}

// GetPendingRequests retrieves all unresolved organization requests
func (r *OrgRequestRepository) GetPendingRequests(ctx context.Context) ([]*models.OrgRequest, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "organization", "status").
		From("org_requests").
		Where(squirrel.Eq{"status": models.OrgRequestPending}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get pending org requests SQL")
		return nil, fmt.Errorf("failed to build get pending org requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get pending org requests query")
		return nil, fmt.Errorf("error querying pending org requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.OrgRequest{}
	for rows.Next() {
		request := &models.OrgRequest{}
		if err := rows.Scan(&request.ID, &request.Name, &request.Email, &request.Organization, &request.Status); err != nil {
			logger.Error().Err(err).Msg("Error scanning org request row")
			return nil, fmt.Errorf("error scanning org request row: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating org request rows")
		return nil, fmt.Errorf("error iterating org request rows: %w", err)
	}

	return requests, nil
}

// HasPendingRequest reports whether the user already has an unresolved request
func (r *OrgRequestRepository) HasPendingRequest(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("org_requests").
		Where(squirrel.Eq{"email": email, "status": models.OrgRequestPending}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building pending org request exists SQL")
		return false, fmt.Errorf("failed to build pending org request existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("email", email).Msg("Error checking pending org request existence")
		return false, fmt.Errorf("error checking pending org request existence: %w", err)
	}

	return exists, nil
}

// UpdateStatus sets the status of an organization request
func (r *OrgRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.OrgRequestStatus) error {
	sql, args, err := r.sb.Update("org_requests").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update org request status SQL")
		return fmt.Errorf("failed to build update org request status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", id).Msg("Error executing update org request status query")
		return fmt.Errorf("error updating org request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrOrgRequestNotFound
	}

	return nil
}

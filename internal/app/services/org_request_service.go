package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	appauth "github.com/lucianaf/vspotlight/internal/app/auth"
	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/db"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// OrgRequestService defines the interface for organization elevation requests
type OrgRequestService interface {
	Apply(ctx context.Context, actor *models.User, req *dto.OrgRequestCreate) (*dto.OrgRequestResponse, error)
	GetPending(ctx context.Context) (*dto.OrgRequestListResponse, error)
	Approve(ctx context.Context, actorRole models.Role, requestID int64) (*dto.OrgRequestResponse, error)
}

// orgRequestServiceImpl implements the OrgRequestService interface
type orgRequestServiceImpl struct {
	database txRunner
	orgRepo  orgRequestStore
	userRepo userStore
	guard    *appauth.Guard
}

// NewOrgRequestService creates a new organization request service instance
func NewOrgRequestService(database *db.PostgresDB, orgRepo *repositories.OrgRequestRepository, userRepo *repositories.UserRepository, guard *appauth.Guard) OrgRequestService {
	return &orgRequestServiceImpl{
		database: database,
		orgRepo:  orgRequestStoreAdapter{orgRepo},
		userRepo: userStoreAdapter{userRepo},
		guard:    guard,
	}
}

// Apply files an organization request on behalf of the acting student
func (s *orgRequestServiceImpl) Apply(ctx context.Context, actor *models.User, req *dto.OrgRequestCreate) (*dto.OrgRequestResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !s.guard.CanApplyForOrganization(actor.Role) {
		return nil, apperrors.NewForbiddenError("only student accounts can apply for organization status")
	}
	if req == nil || strings.TrimSpace(req.Organization) == "" {
		return nil, apperrors.NewValidationError("organization name cannot be empty")
	}

	pending, err := s.orgRepo.HasPendingRequest(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking pending requests: %w", err)
	}
	if pending {
		return nil, apperrors.NewConflictError("a pending organization request already exists")
	}

	request := &models.OrgRequest{
		Name:         actor.FullName(),
		Email:        actor.Email,
		Organization: strings.TrimSpace(req.Organization),
		Status:       models.OrgRequestPending,
	}

	id, err := s.orgRepo.CreateRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("error creating organization request: %w", err)
	}
	request.ID = id

	logger.Info().Str("email", actor.Email).Str("organization", request.Organization).Msg("Organization request filed")

	resp := dto.FromOrgRequest(request)
	return &resp, nil
}

// GetPending retrieves all unresolved organization requests for the dean
func (s *orgRequestServiceImpl) GetPending(ctx context.Context) (*dto.OrgRequestListResponse, error) {
	requests, err := s.orgRepo.GetPendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving pending requests: %w", err)
	}

	responses := make([]dto.OrgRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.FromOrgRequest(request))
	}

	return &dto.OrgRequestListResponse{Requests: responses}, nil
}

// Approve resolves a pending request and elevates the applicant in the same
// transaction, so the request can never be marked approved without the role
// actually changing.
func (s *orgRequestServiceImpl) Approve(ctx context.Context, actorRole models.Role, requestID int64) (*dto.OrgRequestResponse, error) {
	if !s.guard.CanApproveOrgRequests(actorRole) {
		return nil, apperrors.NewForbiddenError("only the dean can approve organization requests")
	}

	var approved *models.OrgRequest
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		request, err := s.orgRepo.WithTx(tx).GetRequestByID(ctx, requestID)
		if err != nil {
			return err
		}

		if request.Status != models.OrgRequestPending {
			return apperrors.ErrOrgRequestResolved
		}

		if err := s.orgRepo.WithTx(tx).UpdateStatus(ctx, requestID, models.OrgRequestApproved); err != nil {
			return err
		}

		if err := s.userRepo.WithTx(tx).PromoteToOrganization(ctx, request.Email, request.Organization); err != nil {
			return err
		}

		request.Status = models.OrgRequestApproved
		approved = request
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrOrgRequestNotFound) {
			return nil, apperrors.ErrOrgRequestNotFound
		}
		if errors.Is(err, apperrors.ErrOrgRequestResolved) {
			return nil, apperrors.ErrOrgRequestResolved
		}
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error approving organization request: %w", err)
	}

	logger.Info().Int64("requestID", requestID).Str("email", approved.Email).Msg("Organization request approved")

	resp := dto.FromOrgRequest(approved)
	return &resp, nil
}

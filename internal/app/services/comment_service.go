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
)

// CommentService defines the interface for event comment operations
type CommentService interface {
	AddComment(ctx context.Context, eventID int64, userEmail string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, eventID int64) (*dto.CommentListResponse, error)
	DeleteComment(ctx context.Context, actorEmail string, actorRole models.Role, commentID int64) error
}

// commentServiceImpl implements the CommentService interface
type commentServiceImpl struct {
	commentRepo *repositories.CommentRepository
	eventRepo   *repositories.EventRepository
	guard       *appauth.Guard
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo *repositories.CommentRepository, eventRepo *repositories.EventRepository, guard *appauth.Guard) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		guard:       guard,
	}
}

// AddComment posts a comment to an event
func (s *commentServiceImpl) AddComment(ctx context.Context, eventID int64, userEmail string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if req == nil || strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("comment text cannot be empty")
	}

	// Verify the event exists before accepting the comment
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	comment := &models.Comment{
		EventID:   eventID,
		UserEmail: userEmail,
		Text:      strings.TrimSpace(req.Text),
	}

	if _, err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	resp := dto.FromComment(comment)
	return &resp, nil
}

// GetComments retrieves all comments on an event, newest first
func (s *commentServiceImpl) GetComments(ctx context.Context, eventID int64) (*dto.CommentListResponse, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	comments, err := s.commentRepo.GetCommentsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.FromComment(comment))
	}

	return &dto.CommentListResponse{Comments: responses}, nil
}

// DeleteComment removes a comment. Authors can delete their own; the dean can
// delete any.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorEmail string, actorRole models.Role, commentID int64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error retrieving comment: %w", err)
	}

	if !s.guard.CanDeleteComment(actorEmail, actorRole, comment) {
		return apperrors.NewForbiddenError("only the author or the dean can delete this comment")
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error deleting comment: %w", err)
	}

	return nil
}

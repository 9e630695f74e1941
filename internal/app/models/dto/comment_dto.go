package dto

import (
	"time"

	"github.com/lucianaf/vspotlight/internal/app/models"
)

// CreateCommentRequest represents a new comment on an event
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse represents a single comment
type CommentResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserEmail string    `json:"userEmail"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CommentListResponse represents all comments on an event, newest first
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// FromComment converts a models.Comment to a CommentResponse
func FromComment(comment *models.Comment) CommentResponse {
	if comment == nil {
		return CommentResponse{}
	}
	return CommentResponse{
		ID:        comment.ID,
		EventID:   comment.EventID,
		UserEmail: comment.UserEmail,
		Text:      comment.Text,
		Timestamp: comment.Timestamp,
	}
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/db"
)

// The store interfaces below are the repository surfaces the transactional
// services consume. The concrete repositories satisfy them through thin
// adapters, so tests can substitute in-memory implementations.

// txRunner runs a function inside a database transaction.
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

type rsvpStore interface {
	WithTx(tx pgx.Tx) rsvpStore
	CreateRSVP(ctx context.Context, rsvp *models.RSVP) (int64, error)
	DeleteRSVP(ctx context.Context, eventID int64, userEmail string) error
	Exists(ctx context.Context, eventID int64, userEmail string) (bool, error)
	CountForEvent(ctx context.Context, eventID int64) (int64, error)
	GetMatchCandidates(ctx context.Context, eventID int64, excludeEmail string) ([]*models.MatchCandidate, error)
}

type matchStore interface {
	WithTx(tx pgx.Tx) matchStore
	CreateMatch(ctx context.Context, match *models.VaqueroMatch) (int64, error)
	GetMatchForUser(ctx context.Context, eventID int64, userEmail string) (*models.VaqueroMatch, error)
}

type userStore interface {
	WithTx(tx pgx.Tx) userStore
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToOrganization(ctx context.Context, email, organization string) error
}

type orgRequestStore interface {
	WithTx(tx pgx.Tx) orgRequestStore
	CreateRequest(ctx context.Context, request *models.OrgRequest) (int64, error)
	GetRequestByID(ctx context.Context, id int64) (*models.OrgRequest, error)
	GetPendingRequests(ctx context.Context) ([]*models.OrgRequest, error)
	HasPendingRequest(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrgRequestStatus) error
}

type eventGetter interface {
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
}

// Adapters. Each embeds the concrete repository and narrows WithTx to the
// store interface; the embedded repository provides the data methods.

type rsvpStoreAdapter struct{ *repositories.RSVPRepository }

func (a rsvpStoreAdapter) WithTx(tx pgx.Tx) rsvpStore {
	return rsvpStoreAdapter{a.RSVPRepository.WithTx(tx)}
}

type matchStoreAdapter struct{ *repositories.MatchRepository }

func (a matchStoreAdapter) WithTx(tx pgx.Tx) matchStore {
	return matchStoreAdapter{a.MatchRepository.WithTx(tx)}
}

type userStoreAdapter struct{ *repositories.UserRepository }

func (a userStoreAdapter) WithTx(tx pgx.Tx) userStore {
	return userStoreAdapter{a.UserRepository.WithTx(tx)}
}

type orgRequestStoreAdapter struct {
	*repositories.OrgRequestRepository
}

func (a orgRequestStoreAdapter) WithTx(tx pgx.Tx) orgRequestStore {
	return orgRequestStoreAdapter{a.OrgRequestRepository.WithTx(tx)}
}

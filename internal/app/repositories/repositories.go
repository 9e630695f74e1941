package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("resource not found")
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx. Repositories
// run against the pool by default; WithTx rebinds them to a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	EventRepository      *EventRepository
	CommentRepository    *CommentRepository
	RSVPRepository       *RSVPRepository
	MatchRepository      *MatchRepository
	OrgRequestRepository *OrgRequestRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		EventRepository:      NewEventRepository(db),
		CommentRepository:    NewCommentRepository(db),
		RSVPRepository:       NewRSVPRepository(db),
		MatchRepository:      NewMatchRepository(db),
		OrgRequestRepository: NewOrgRequestRepository(db),
	}
}

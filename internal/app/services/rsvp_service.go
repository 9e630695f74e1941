package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/db"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
)

// RSVPService defines the interface for RSVP and attendee matching operations
type RSVPService interface {
	RSVP(ctx context.Context, eventID int64, userEmail string, findVaquero bool) (*dto.RSVPResponse, error)
	CancelRSVP(ctx context.Context, eventID int64, userEmail string) error
	ToggleRSVP(ctx context.Context, eventID int64, userEmail string) (*dto.ToggleRSVPResponse, error)
	GetMatch(ctx context.Context, eventID int64, userEmail string) (*dto.MatchResponse, error)
}

// rsvpServiceImpl implements the RSVPService interface
type rsvpServiceImpl struct {
	database  txRunner
	rsvpRepo  rsvpStore
	matchRepo matchStore
	eventRepo eventGetter
	userRepo  userStore
	// randIntn is swappable so matching can be tested deterministically
	randIntn func(n int) int
}

// NewRSVPService creates a new RSVP service instance
func NewRSVPService(database *db.PostgresDB, rsvpRepo *repositories.RSVPRepository, matchRepo *repositories.MatchRepository, eventRepo *repositories.EventRepository, userRepo *repositories.UserRepository) RSVPService {
	return &rsvpServiceImpl{
		database:  database,
		rsvpRepo:  rsvpStoreAdapter{rsvpRepo},
		matchRepo: matchStoreAdapter{matchRepo},
		eventRepo: eventRepo,
		userRepo:  userStoreAdapter{userRepo},
		randIntn:  rand.Intn,
	}
}

// chooseCandidate picks a match partner from the eligible pool, preferring
// attendees who share the user's major. Returns nil when the pool is empty.
func chooseCandidate(candidates []*models.MatchCandidate, major string, randIntn func(int) int) *models.MatchCandidate {
	if len(candidates) == 0 {
		return nil
	}

	sameMajor := make([]*models.MatchCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Major == major {
			sameMajor = append(sameMajor, candidate)
		}
	}

	pool := candidates
	if len(sameMajor) > 0 {
		pool = sameMajor
	}

	return pool[randIntn(len(pool))]
}

// RSVP records attendance for an event. With findVaquero set, the RSVP and
// any resulting match are committed atomically so two concurrent RSVPs cannot
// claim the same partner.
func (s *rsvpServiceImpl) RSVP(ctx context.Context, eventID int64, userEmail string, findVaquero bool) (*dto.RSVPResponse, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	var chosen *models.MatchCandidate
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rsvp := &models.RSVP{
			EventID:     eventID,
			UserEmail:   userEmail,
			FindVaquero: findVaquero,
		}
		if _, err := s.rsvpRepo.WithTx(tx).CreateRSVP(ctx, rsvp); err != nil {
			return err
		}

		if !findVaquero {
			return nil
		}

		candidates, err := s.rsvpRepo.WithTx(tx).GetMatchCandidates(ctx, eventID, userEmail)
		if err != nil {
			return err
		}

		chosen = chooseCandidate(candidates, user.Major, s.randIntn)
		if chosen == nil {
			// Nobody to pair with yet; the RSVP still stands
			return nil
		}

		match := &models.VaqueroMatch{
			EventID:    eventID,
			User1Email: userEmail,
			User2Email: chosen.Email,
		}
		if _, err := s.matchRepo.WithTx(tx).CreateMatch(ctx, match); err != nil {
			return err
		}

		logger.Info().Int64("eventID", eventID).Str("user1", userEmail).Str("user2", chosen.Email).Msg("Vaquero match created")
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyRsvped) {
			return nil, apperrors.ErrAlreadyRsvped
		}
		return nil, fmt.Errorf("error creating RSVP: %w", err)
	}

	count, err := s.rsvpRepo.CountForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error counting RSVPs: %w", err)
	}

	resp := &dto.RSVPResponse{
		EventID:     eventID,
		Rsvped:      true,
		Count:       count,
		FindVaquero: findVaquero,
	}
	if chosen != nil {
		resp.Match = &dto.MatchResponse{
			EventID:      eventID,
			MatchedEmail: chosen.Email,
			FirstName:    chosen.FirstName,
			LastName:     chosen.LastName,
			Major:        chosen.Major,
		}
	}
	return resp, nil
}

// CancelRSVP withdraws the user's RSVP for an event
func (s *rsvpServiceImpl) CancelRSVP(ctx context.Context, eventID int64, userEmail string) error {
	if err := s.rsvpRepo.DeleteRSVP(ctx, eventID, userEmail); err != nil {
		if errors.Is(err, repositories.ErrRSVPNotFound) {
			return apperrors.ErrRsvpNotFound
		}
		return fmt.Errorf("error cancelling RSVP: %w", err)
	}
	return nil
}

// ToggleRSVP flips the user's RSVP state for an event and returns the new
// state with the updated count. Toggling on never opts into matching.
func (s *rsvpServiceImpl) ToggleRSVP(ctx context.Context, eventID int64, userEmail string) (*dto.ToggleRSVPResponse, error) {
	if _, err := s.eventRepo.GetEventByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	exists, err := s.rsvpRepo.Exists(ctx, eventID, userEmail)
	if err != nil {
		return nil, fmt.Errorf("error checking RSVP: %w", err)
	}

	if exists {
		err = s.rsvpRepo.DeleteRSVP(ctx, eventID, userEmail)
		// A concurrent cancel already removed it; the target state holds
		if err != nil && !errors.Is(err, repositories.ErrRSVPNotFound) {
			return nil, fmt.Errorf("error cancelling RSVP: %w", err)
		}
	} else {
		rsvp := &models.RSVP{EventID: eventID, UserEmail: userEmail}
		_, err = s.rsvpRepo.CreateRSVP(ctx, rsvp)
		if err != nil && !errors.Is(err, repositories.ErrAlreadyRsvped) {
			return nil, fmt.Errorf("error creating RSVP: %w", err)
		}
	}

	count, err := s.rsvpRepo.CountForEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error counting RSVPs: %w", err)
	}

	return &dto.ToggleRSVPResponse{
		EventID: eventID,
		Rsvped:  !exists,
		Count:   count,
	}, nil
}

// GetMatch returns the partner the user was paired with for an event
func (s *rsvpServiceImpl) GetMatch(ctx context.Context, eventID int64, userEmail string) (*dto.MatchResponse, error) {
	match, err := s.matchRepo.GetMatchForUser(ctx, eventID, userEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving match: %w", err)
	}

	partnerEmail := match.User1Email
	if partnerEmail == userEmail {
		partnerEmail = match.User2Email
	}

	partner, err := s.userRepo.GetUserByEmail(ctx, partnerEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving matched user: %w", err)
	}

	return &dto.MatchResponse{
		EventID:      eventID,
		MatchedEmail: partner.Email,
		FirstName:    partner.FirstName,
		LastName:     partner.LastName,
		Major:        partner.Major,
	}, nil
}

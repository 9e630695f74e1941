package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
)

func newTestRSVPService(hub *memoryHub) *rsvpServiceImpl {
	return &rsvpServiceImpl{
		database:  fakeTxRunner{},
		rsvpRepo:  memRSVPStore{hub},
		matchRepo: memMatchStore{hub},
		eventRepo: memEventStore{hub},
		userRepo:  memUserStore{hub},
		randIntn:  func(n int) int { return 0 },
	}
}

func candidate(email, major string) *models.MatchCandidate {
	return &models.MatchCandidate{Email: email, Major: major}
}

func TestChooseCandidateEmptyPool(t *testing.T) {
	chosen := chooseCandidate(nil, "Computer Science", func(n int) int { return 0 })
	assert.Nil(t, chosen)
}

func TestChooseCandidatePrefersSameMajor(t *testing.T) {
	candidates := []*models.MatchCandidate{
		candidate("alex@utrgv.edu", "Biology"),
		candidate("blake@utrgv.edu", "Computer Science"),
		candidate("casey@utrgv.edu", "Biology"),
		candidate("drew@utrgv.edu", "Computer Science"),
	}

	// The random draw runs over the same-major subset only, so index 1
	// is the second Computer Science candidate.
	chosen := chooseCandidate(candidates, "Computer Science", func(n int) int {
		require.Equal(t, 2, n)
		return 1
	})
	require.NotNil(t, chosen)
	assert.Equal(t, "drew@utrgv.edu", chosen.Email)
}

func TestChooseCandidateFallsBackToFullPool(t *testing.T) {
	candidates := []*models.MatchCandidate{
		candidate("alex@utrgv.edu", "Biology"),
		candidate("blake@utrgv.edu", "History"),
	}

	chosen := chooseCandidate(candidates, "Computer Science", func(n int) int {
		require.Equal(t, 2, n)
		return 0
	})
	require.NotNil(t, chosen)
	assert.Equal(t, "alex@utrgv.edu", chosen.Email)
}

func TestRSVPDuplicate(t *testing.T) {
	hub := newMemoryHub()
	hub.addUser("sofia@utrgv.edu", "Computer Science")
	event := hub.addEvent("Bonfire", "acm@utrgv.edu")
	svc := newTestRSVPService(hub)
	ctx := context.Background()

	first, err := svc.RSVP(ctx, event.ID, "sofia@utrgv.edu", false)
	require.NoError(t, err)
	assert.True(t, first.Rsvped)
	assert.EqualValues(t, 1, first.Count)

	_, err = svc.RSVP(ctx, event.ID, "sofia@utrgv.edu", false)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRsvped)
}

func TestRSVPMatchingPairsAndExcludesMatched(t *testing.T) {
	hub := newMemoryHub()
	event := hub.addEvent("Bonfire", "acm@utrgv.edu")
	hub.addUser("alex@utrgv.edu", "Biology")
	hub.addUser("blake@utrgv.edu", "Biology")
	hub.addUser("casey@utrgv.edu", "Biology")
	svc := newTestRSVPService(hub)
	ctx := context.Background()

	// First opt-in has nobody to pair with; the RSVP still stands.
	resp, err := svc.RSVP(ctx, event.ID, "alex@utrgv.edu", true)
	require.NoError(t, err)
	assert.Nil(t, resp.Match)

	// Second opt-in pairs with the first.
	resp, err = svc.RSVP(ctx, event.ID, "blake@utrgv.edu", true)
	require.NoError(t, err)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "alex@utrgv.edu", resp.Match.MatchedEmail)

	// Third opt-in sees both earlier attendees as already matched, so
	// nobody is eligible and no second pair forms.
	resp, err = svc.RSVP(ctx, event.ID, "casey@utrgv.edu", true)
	require.NoError(t, err)
	assert.Nil(t, resp.Match)
	assert.Len(t, hub.matches, 1)

	// Both sides of the pair can look the match up.
	match, err := svc.GetMatch(ctx, event.ID, "alex@utrgv.edu")
	require.NoError(t, err)
	assert.Equal(t, "blake@utrgv.edu", match.MatchedEmail)

	match, err = svc.GetMatch(ctx, event.ID, "blake@utrgv.edu")
	require.NoError(t, err)
	assert.Equal(t, "alex@utrgv.edu", match.MatchedEmail)

	_, err = svc.GetMatch(ctx, event.ID, "casey@utrgv.edu")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestRSVPUnknownEvent(t *testing.T) {
	hub := newMemoryHub()
	hub.addUser("sofia@utrgv.edu", "Computer Science")
	svc := newTestRSVPService(hub)

	_, err := svc.RSVP(context.Background(), 99, "sofia@utrgv.edu", false)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestChooseCandidateSingleCandidate(t *testing.T) {
	candidates := []*models.MatchCandidate{
		candidate("alex@utrgv.edu", "Biology"),
	}

	chosen := chooseCandidate(candidates, "Biology", func(n int) int {
		require.Equal(t, 1, n)
		return 0
	})
	require.NotNil(t, chosen)
	assert.Equal(t, "alex@utrgv.edu", chosen.Email)
}

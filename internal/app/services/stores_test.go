package services

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/repositories"
	"github.com/lucianaf/vspotlight/internal/db"
)

// fakeTxRunner satisfies txRunner without a database. The in-memory stores
// ignore the transaction handle, so nil is fine.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type rsvpKey struct {
	eventID int64
	email   string
}

// memoryHub is the shared state behind the in-memory store fakes.
type memoryHub struct {
	users    map[string]*models.User
	events   map[int64]*models.Event
	rsvps    map[rsvpKey]bool // value: findVaquero
	matches  []*models.VaqueroMatch
	requests map[int64]*models.OrgRequest
	nextID   int64
}

func newMemoryHub() *memoryHub {
	return &memoryHub{
		users:    map[string]*models.User{},
		events:   map[int64]*models.Event{},
		rsvps:    map[rsvpKey]bool{},
		requests: map[int64]*models.OrgRequest{},
	}
}

func (h *memoryHub) addUser(email, major string) *models.User {
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		StudentID: "20480000",
		Email:     email,
		Major:     major,
		Role:      models.RoleStudent,
	}
	h.users[email] = user
	return user
}

func (h *memoryHub) addEvent(name, organizationEmail string) *models.Event {
	h.nextID++
	event := &models.Event{
		ID:                h.nextID,
		Name:              name,
		Date:              time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		Location:          "Student Union Lawn",
		Description:       "Test event",
		OrganizationEmail: organizationEmail,
	}
	h.events[event.ID] = event
	return event
}

type memRSVPStore struct{ hub *memoryHub }

func (s memRSVPStore) WithTx(pgx.Tx) rsvpStore { return s }

func (s memRSVPStore) CreateRSVP(_ context.Context, rsvp *models.RSVP) (int64, error) {
	key := rsvpKey{rsvp.EventID, rsvp.UserEmail}
	if _, ok := s.hub.rsvps[key]; ok {
		return 0, repositories.ErrAlreadyRsvped
	}
	s.hub.rsvps[key] = rsvp.FindVaquero
	s.hub.nextID++
	return s.hub.nextID, nil
}

func (s memRSVPStore) DeleteRSVP(_ context.Context, eventID int64, userEmail string) error {
	key := rsvpKey{eventID, userEmail}
	if _, ok := s.hub.rsvps[key]; !ok {
		return repositories.ErrRSVPNotFound
	}
	delete(s.hub.rsvps, key)
	return nil
}

func (s memRSVPStore) Exists(_ context.Context, eventID int64, userEmail string) (bool, error) {
	_, ok := s.hub.rsvps[rsvpKey{eventID, userEmail}]
	return ok, nil
}

func (s memRSVPStore) CountForEvent(_ context.Context, eventID int64) (int64, error) {
	var count int64
	for key := range s.hub.rsvps {
		if key.eventID == eventID {
			count++
		}
	}
	return count, nil
}

// GetMatchCandidates mirrors the SQL semantics: opted-in RSVPs for the event,
// minus the requester and anyone already on either side of a match.
func (s memRSVPStore) GetMatchCandidates(_ context.Context, eventID int64, excludeEmail string) ([]*models.MatchCandidate, error) {
	taken := map[string]bool{}
	for _, match := range s.hub.matches {
		if match.EventID == eventID {
			taken[match.User1Email] = true
			taken[match.User2Email] = true
		}
	}

	candidates := []*models.MatchCandidate{}
	for key, findVaquero := range s.hub.rsvps {
		if key.eventID != eventID || !findVaquero || key.email == excludeEmail || taken[key.email] {
			continue
		}
		user := s.hub.users[key.email]
		candidates = append(candidates, &models.MatchCandidate{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Major:     user.Major,
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Email < candidates[j].Email })
	return candidates, nil
}

type memMatchStore struct{ hub *memoryHub }

func (s memMatchStore) WithTx(pgx.Tx) matchStore { return s }

func (s memMatchStore) CreateMatch(_ context.Context, match *models.VaqueroMatch) (int64, error) {
	s.hub.nextID++
	match.ID = s.hub.nextID
	s.hub.matches = append(s.hub.matches, match)
	return match.ID, nil
}

func (s memMatchStore) GetMatchForUser(_ context.Context, eventID int64, userEmail string) (*models.VaqueroMatch, error) {
	for _, match := range s.hub.matches {
		if match.EventID == eventID && match.Involves(userEmail) {
			return match, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type memUserStore struct{ hub *memoryHub }

func (s memUserStore) WithTx(pgx.Tx) userStore { return s }

func (s memUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.hub.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s memUserStore) PromoteToOrganization(_ context.Context, email, organization string) error {
	user, ok := s.hub.users[email]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = models.RoleOrganization
	user.Organization = &organization
	return nil
}

type memOrgRequestStore struct{ hub *memoryHub }

func (s memOrgRequestStore) WithTx(pgx.Tx) orgRequestStore { return s }

func (s memOrgRequestStore) CreateRequest(_ context.Context, request *models.OrgRequest) (int64, error) {
	s.hub.nextID++
	stored := *request
	stored.ID = s.hub.nextID
	s.hub.requests[stored.ID] = &stored
	return stored.ID, nil
}

func (s memOrgRequestStore) GetRequestByID(_ context.Context, id int64) (*models.OrgRequest, error) {
	request, ok := s.hub.requests[id]
	if !ok {
		return nil, repositories.ErrOrgRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (s memOrgRequestStore) GetPendingRequests(_ context.Context) ([]*models.OrgRequest, error) {
	pending := []*models.OrgRequest{}
	for _, request := range s.hub.requests {
		if request.Status == models.OrgRequestPending {
			copied := *request
			pending = append(pending, &copied)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	return pending, nil
}

func (s memOrgRequestStore) HasPendingRequest(_ context.Context, email string) (bool, error) {
	for _, request := range s.hub.requests {
		if request.Email == email && request.Status == models.OrgRequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (s memOrgRequestStore) UpdateStatus(_ context.Context, id int64, status models.OrgRequestStatus) error {
	request, ok := s.hub.requests[id]
	if !ok {
		return repositories.ErrOrgRequestNotFound
	}
	request.Status = status
	return nil
}

type memEventStore struct{ hub *memoryHub }

func (s memEventStore) GetEventByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := s.hub.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return event, nil
}

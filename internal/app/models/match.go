package models

// VaqueroMatch defines a one-time pairing of two RSVP'd attendees based on
// the 'vaquero_matches' table. The pair is conceptually unordered but stored
// as (user1, user2) in insertion order.
type VaqueroMatch struct {
	ID         int64  `json:"id" db:"id"`
	EventID    int64  `json:"eventId" db:"event_id"`
	User1Email string `json:"user1Email" db:"user1_email"`
	User2Email string `json:"user2Email" db:"user2_email"`
}

// Involves reports whether the given user appears on either side of the match
func (m *VaqueroMatch) Involves(email string) bool {
	return m.User1Email == email || m.User2Email == email
}

// MatchCandidate is an attendee eligible for matching: RSVP'd with the
// find-a-vaquero flag set and not already matched for the event.
type MatchCandidate struct {
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Major     string `db:"major"`
}

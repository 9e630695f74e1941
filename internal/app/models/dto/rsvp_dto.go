package dto

// RSVPRequest represents an RSVP to an event. FindVaquero opts the user into
// being matched with another attendee.
type RSVPRequest struct {
	FindVaquero bool `json:"findVaquero"`
}

// RSVPResponse represents the outcome of an RSVP
type RSVPResponse struct {
	EventID     int64          `json:"eventId"`
	Rsvped      bool           `json:"rsvped"`
	Count       int64          `json:"count"`
	FindVaquero bool           `json:"findVaquero"`
	Match       *MatchResponse `json:"match,omitempty"`
}

// ToggleRSVPResponse represents the state after toggling an RSVP
type ToggleRSVPResponse struct {
	EventID int64 `json:"eventId"`
	Rsvped  bool  `json:"rsvped"`
	Count   int64 `json:"count"`
}

// MatchResponse represents an attendee match made for an event
type MatchResponse struct {
	EventID      int64  `json:"eventId"`
	MatchedEmail string `json:"matchedEmail"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Major        string `json:"major"`
}

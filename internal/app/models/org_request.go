package models

// OrgRequestStatus is the lifecycle state of an organization request
type OrgRequestStatus string

const (
	// OrgRequestPending is the initial state
	OrgRequestPending OrgRequestStatus = "pending"
	// OrgRequestApproved is terminal; there is no rejection state
	OrgRequestApproved OrgRequestStatus = "approved"
)

// OrgRequest defines the role-elevation application based on the 'org_requests' table
type OrgRequest struct {
	ID           int64            `json:"id" db:"id"`
	Name         string           `json:"name" db:"name"`
	Email        string           `json:"email" db:"email"`
	Organization string           `json:"organization" db:"organization"`
	Status       OrgRequestStatus `json:"status" db:"status"`
}

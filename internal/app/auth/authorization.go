// Package auth holds the server-side authorization rules. Every privileged
// operation is checked here against the actor's role from the verified token,
// never against anything the client sent in the request body.
package auth

import "github.com/lucianaf/vspotlight/internal/app/models"

// Guard answers authorization questions for the service layer
type Guard struct{}

// NewGuard creates a new authorization guard
func NewGuard() *Guard {
	return &Guard{}
}

// CanCreateEvents reports whether the role may publish events. Only
// dean-approved organization accounts qualify.
func (g *Guard) CanCreateEvents(role models.Role) bool {
	return role == models.RoleOrganization
}

// CanModifyEvent reports whether the actor may update or delete the event.
// Only the organization that published it qualifies.
func (g *Guard) CanModifyEvent(actorEmail string, role models.Role, event *models.Event) bool {
	if event == nil {
		return false
	}
	return role == models.RoleOrganization && event.OrganizationEmail == actorEmail
}

// CanApproveOrgRequests reports whether the role may resolve organization
// requests
func (g *Guard) CanApproveOrgRequests(role models.Role) bool {
	return role == models.RoleDean
}

// CanApplyForOrganization reports whether the role may file an organization
// request. Accounts that already hold an elevated role may not apply again.
func (g *Guard) CanApplyForOrganization(role models.Role) bool {
	return role == models.RoleStudent
}

// CanDeleteComment reports whether the actor may remove the comment. Authors
// own their comments; the dean moderates everything.
func (g *Guard) CanDeleteComment(actorEmail string, role models.Role, comment *models.Comment) bool {
	if comment == nil {
		return false
	}
	return comment.UserEmail == actorEmail || role == models.RoleDean
}

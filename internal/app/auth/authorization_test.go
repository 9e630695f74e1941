package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucianaf/vspotlight/internal/app/models"
)

func TestCanCreateEvents(t *testing.T) {
	guard := NewGuard()

	assert.True(t, guard.CanCreateEvents(models.RoleOrganization))
	assert.False(t, guard.CanCreateEvents(models.RoleStudent))
	assert.False(t, guard.CanCreateEvents(models.RoleDean))
}

func TestCanModifyEvent(t *testing.T) {
	guard := NewGuard()
	event := &models.Event{ID: 1, Name: "Career Fair", OrganizationEmail: "acm@utrgv.edu"}

	assert.True(t, guard.CanModifyEvent("acm@utrgv.edu", models.RoleOrganization, event))
	assert.False(t, guard.CanModifyEvent("ieee@utrgv.edu", models.RoleOrganization, event))
	assert.False(t, guard.CanModifyEvent("acm@utrgv.edu", models.RoleStudent, event))
	assert.False(t, guard.CanModifyEvent("dean@utrgv.edu", models.RoleDean, event))
	assert.False(t, guard.CanModifyEvent("acm@utrgv.edu", models.RoleOrganization, nil))
}

func TestCanApproveOrgRequests(t *testing.T) {
	guard := NewGuard()

	assert.True(t, guard.CanApproveOrgRequests(models.RoleDean))
	assert.False(t, guard.CanApproveOrgRequests(models.RoleStudent))
	assert.False(t, guard.CanApproveOrgRequests(models.RoleOrganization))
}

func TestCanApplyForOrganization(t *testing.T) {
	guard := NewGuard()

	assert.True(t, guard.CanApplyForOrganization(models.RoleStudent))
	assert.False(t, guard.CanApplyForOrganization(models.RoleOrganization))
	assert.False(t, guard.CanApplyForOrganization(models.RoleDean))
}

func TestCanDeleteComment(t *testing.T) {
	guard := NewGuard()
	comment := &models.Comment{ID: 1, EventID: 1, UserEmail: "sofia@utrgv.edu"}

	assert.True(t, guard.CanDeleteComment("sofia@utrgv.edu", models.RoleStudent, comment))
	assert.True(t, guard.CanDeleteComment("dean@utrgv.edu", models.RoleDean, comment))
	assert.False(t, guard.CanDeleteComment("marco@utrgv.edu", models.RoleStudent, comment))
	assert.False(t, guard.CanDeleteComment("acm@utrgv.edu", models.RoleOrganization, comment))
	assert.False(t, guard.CanDeleteComment("sofia@utrgv.edu", models.RoleStudent, nil))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/lucianaf/vspotlight/internal/app/auth"
	"github.com/lucianaf/vspotlight/internal/app/models"
	"github.com/lucianaf/vspotlight/internal/app/models/dto"
	"github.com/lucianaf/vspotlight/internal/pkg/apperrors"
)

func newTestOrgRequestService(hub *memoryHub) *orgRequestServiceImpl {
	return &orgRequestServiceImpl{
		database: fakeTxRunner{},
		orgRepo:  memOrgRequestStore{hub},
		userRepo: memUserStore{hub},
		guard:    appauth.NewGuard(),
	}
}

func TestApproveElevatesApplicant(t *testing.T) {
	hub := newMemoryHub()
	actor := hub.addUser("sofia@utrgv.edu", "Computer Science")
	svc := newTestOrgRequestService(hub)
	ctx := context.Background()

	filed, err := svc.Apply(ctx, actor, &dto.OrgRequestCreate{Organization: "Chess Club"})
	require.NoError(t, err)
	assert.Equal(t, string(models.OrgRequestPending), filed.Status)

	approved, err := svc.Approve(ctx, models.RoleDean, filed.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrgRequestApproved), approved.Status)

	// The applicant now holds the organization role.
	assert.Equal(t, models.RoleOrganization, actor.Role)
	require.NotNil(t, actor.Organization)
	assert.Equal(t, "Chess Club", *actor.Organization)
}

func TestApproveAlreadyResolved(t *testing.T) {
	hub := newMemoryHub()
	actor := hub.addUser("sofia@utrgv.edu", "Computer Science")
	svc := newTestOrgRequestService(hub)
	ctx := context.Background()

	filed, err := svc.Apply(ctx, actor, &dto.OrgRequestCreate{Organization: "Chess Club"})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, models.RoleDean, filed.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, models.RoleDean, filed.ID)
	assert.ErrorIs(t, err, apperrors.ErrOrgRequestResolved)
}

func TestApproveRequiresDean(t *testing.T) {
	hub := newMemoryHub()
	svc := newTestOrgRequestService(hub)

	for _, role := range []models.Role{models.RoleStudent, models.RoleOrganization} {
		_, err := svc.Approve(context.Background(), role, 1)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	hub := newMemoryHub()
	svc := newTestOrgRequestService(hub)

	_, err := svc.Approve(context.Background(), models.RoleDean, 404)
	assert.ErrorIs(t, err, apperrors.ErrOrgRequestNotFound)
}

func TestApplyRejectsSecondPendingRequest(t *testing.T) {
	hub := newMemoryHub()
	actor := hub.addUser("sofia@utrgv.edu", "Computer Science")
	svc := newTestOrgRequestService(hub)
	ctx := context.Background()

	_, err := svc.Apply(ctx, actor, &dto.OrgRequestCreate{Organization: "Chess Club"})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, actor, &dto.OrgRequestCreate{Organization: "Robotics Club"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrAmlya/unheard-echoes/models"
)

var (
	admin = &Caller{ID: "admin-1", Role: models.RoleAdmin}
	user  = &Caller{ID: "user-1", Role: models.RoleUser}
	other = &Caller{ID: "user-2", Role: models.RoleUser}
)

func writingOwnedBy(id string) *models.Writing {
	return &models.Writing{ID: "w-1", UserID: id, Status: models.StatusPending}
}

func TestPublicOperationsAllowAnonymous(t *testing.T) {
	for _, op := range []Operation{OpListPublic, OpRead, OpLike, OpAddComment} {
		assert.Equal(t, Allow, Decide(nil, op, nil), string(op))
	}
}

func TestCreateRequiresSession(t *testing.T) {
	assert.Equal(t, DenyUnauthenticated, Decide(nil, OpCreate, nil))
	assert.Equal(t, Allow, Decide(user, OpCreate, nil))
	assert.Equal(t, Allow, Decide(admin, OpCreate, nil))
}

func TestUpdateDeleteOwnershipOnly(t *testing.T) {
	w := writingOwnedBy(user.ID)

	assert.Equal(t, DenyUnauthenticated, Decide(nil, OpUpdate, w))
	assert.Equal(t, Allow, Decide(user, OpUpdate, w))
	assert.Equal(t, Allow, Decide(user, OpDelete, w))
	assert.Equal(t, DenyForbidden, Decide(other, OpUpdate, w))
	assert.Equal(t, DenyForbidden, Decide(other, OpDelete, w))

	// Admin role grants no implicit edit rights over others' content.
	assert.Equal(t, DenyForbidden, Decide(admin, OpUpdate, w))
	assert.Equal(t, DenyForbidden, Decide(admin, OpDelete, w))
}

func TestAdminOnlyOperations(t *testing.T) {
	w := writingOwnedBy(user.ID)
	for _, op := range []Operation{OpApprove, OpReject, OpListPending, OpListReviewed, OpDeleteComment} {
		assert.Equal(t, DenyUnauthenticated, Decide(nil, op, w), string(op))
		assert.Equal(t, DenyForbidden, Decide(user, op, w), string(op))
		assert.Equal(t, Allow, Decide(admin, op, w), string(op))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, models.StatusApproved, InitialStatus(models.RoleAdmin))
	assert.Equal(t, models.StatusPending, InitialStatus(models.RoleUser))
}

func TestTransitionApproveAndReject(t *testing.T) {
	now := time.Now()
	w := writingOwnedBy(user.ID)

	err := Transition(w, models.StatusApproved, admin.ID, now)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, w.Status)
	assert.Equal(t, now, *w.ReviewedAt)
	assert.Equal(t, admin.ID, *w.ReviewedBy)

	// approved -> rejected is legal
	err = Transition(w, models.StatusRejected, admin.ID, now)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, w.Status)

	// rejected -> approved is legal
	err = Transition(w, models.StatusApproved, admin.ID, now)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, w.Status)
}

func TestTransitionIdempotentReApprove(t *testing.T) {
	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	w := writingOwnedBy(user.ID)

	assert.NoError(t, Transition(w, models.StatusApproved, admin.ID, first))
	assert.NoError(t, Transition(w, models.StatusApproved, "admin-2", second))

	assert.Equal(t, models.StatusApproved, w.Status)
	assert.Equal(t, second, *w.ReviewedAt)
	assert.Equal(t, "admin-2", *w.ReviewedBy)
}

func TestNoTransitionBackToPending(t *testing.T) {
	w := writingOwnedBy(user.ID)
	assert.NoError(t, Transition(w, models.StatusApproved, admin.ID, time.Now()))

	err := Transition(w, models.StatusPending, admin.ID, time.Now())
	assert.Error(t, err)
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Equal(t, models.StatusApproved, w.Status)
}

// Package policy is the moderation and authorization core. It decides,
// as pure functions with no I/O, whether a caller may perform an
// operation on a writing and which status transitions are legal.
// Services consult it before touching the repositories.
package policy

import (
	"time"

	"github.com/MrAmlya/unheard-echoes/models"
)

type Operation string

const (
	OpListPublic    Operation = "list_public"
	OpListOwn       Operation = "list_own"
	OpListPending   Operation = "list_pending"
	OpListReviewed  Operation = "list_reviewed"
	OpCreate        Operation = "create"
	OpRead          Operation = "read"
	OpUpdate        Operation = "update"
	OpDelete        Operation = "delete"
	OpApprove       Operation = "approve"
	OpReject        Operation = "reject"
	OpLike          Operation = "like"
	OpAddComment    Operation = "add_comment"
	OpDeleteComment Operation = "delete_comment"
)

// Caller identifies the acting user. A nil *Caller means the request
// carried no valid session.
type Caller struct {
	ID   string
	Role models.UserRole
}

type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated: no valid session (maps to 401).
	DenyUnauthenticated
	// DenyForbidden: valid session, insufficient role or ownership (403).
	DenyForbidden
)

// Decide evaluates the authorization predicate for op. The target
// writing is only consulted for ownership-gated operations and may be
// nil for the rest.
func Decide(caller *Caller, op Operation, w *models.Writing) Decision {
	switch op {
	case OpListPublic, OpRead, OpLike, OpAddComment:
		return Allow

	case OpCreate, OpListOwn:
		if caller == nil {
			return DenyUnauthenticated
		}
		return Allow

	case OpUpdate, OpDelete:
		if caller == nil {
			return DenyUnauthenticated
		}
		// Ownership only. Admins do not get implicit edit rights over
		// other users' writings.
		if w == nil || w.UserID != caller.ID {
			return DenyForbidden
		}
		return Allow

	case OpApprove, OpReject, OpListPending, OpListReviewed, OpDeleteComment:
		if caller == nil {
			return DenyUnauthenticated
		}
		if caller.Role != models.RoleAdmin {
			return DenyForbidden
		}
		return Allow
	}

	return DenyForbidden
}

// InitialStatus returns the status a freshly created writing enters.
// Admin submissions are approved on the spot and carry a review stamp;
// everything else starts pending with no review fields.
func InitialStatus(role models.UserRole) models.WritingStatus {
	if role == models.RoleAdmin {
		return models.StatusApproved
	}
	return models.StatusPending
}

// Stamp fills in the review fields that must accompany an approved or
// rejected status.
func Stamp(w *models.Writing, reviewerID string, now time.Time) {
	w.ReviewedAt = &now
	reviewer := reviewerID
	w.ReviewedBy = &reviewer
}

// CanTransition reports whether a writing may move from its current
// status to the requested one. Approve and reject are legal from any
// status (re-reviewing is an idempotent re-assignment); nothing ever
// goes back to pending.
func CanTransition(from, to models.WritingStatus) bool {
	switch to {
	case models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}

// Transition applies an admin review decision to the writing, updating
// the status and refreshing the review stamp. It does not persist.
func Transition(w *models.Writing, to models.WritingStatus, reviewerID string, now time.Time) error {
	if !CanTransition(w.Status, to) {
		return models.ErrorValidation{Message: "invalid status transition"}
	}
	w.Status = to
	Stamp(w, reviewerID, now)
	return nil
}

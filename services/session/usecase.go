package session

import (
	"context"

	"github.com/piresc/titipkan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/titipkan/services/session SessionUC

// SessionUC represents the session context usecase interface. One
// context exists per authenticated user; it caches the parcels and
// trips visible under the user's active role and is refreshed
// wholesale after every mutation.
type SessionUC interface {
	// Attach creates (or replaces) the user's context and loads it
	Attach(ctx context.Context, user *models.User) error

	// Teardown discards the user's context on logout
	Teardown(userID string)

	// SwitchRole re-scopes the cached collections under the new role
	SwitchRole(ctx context.Context, userID string, newRole models.Role) error

	// AddParcel commits a draft and reconciles the cache: the created
	// parcel is prepended immediately, then a full refresh replaces
	// the optimistic view.
	AddParcel(ctx context.Context, actor models.Actor, draft *models.ParcelDraft) (*models.Parcel, error)

	// Refresh reloads the cached collections from the source of truth
	Refresh(ctx context.Context, userID string) error

	// MarkStale flags the user's context for refresh on next read.
	// Used by event consumers that may run on another instance.
	MarkStale(ctx context.Context, userID string) error

	// Snapshot returns a copy of the user's current context
	Snapshot(ctx context.Context, userID string) (*Snapshot, error)
}

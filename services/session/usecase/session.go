package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/titipkan/internal/pkg/constants"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/session"
)

// staleTTL bounds how long an unconsumed staleness marker lives
const staleTTL = time.Hour

// Attach creates (or replaces) the user's session context and performs
// the initial load.
func (m *Manager) Attach(ctx context.Context, user *models.User) error {
	sc := session.NewContext(user)

	m.mu.Lock()
	m.contexts[user.ID.String()] = sc
	m.mu.Unlock()

	return m.Refresh(ctx, user.ID.String())
}

// Teardown discards the user's context on logout
func (m *Manager) Teardown(userID string) {
	m.mu.Lock()
	delete(m.contexts, userID)
	m.mu.Unlock()

	logger.Debug("Session context discarded", logger.String("user_id", userID))
}

// SwitchRole re-scopes the cached collections under the new role
func (m *Manager) SwitchRole(ctx context.Context, userID string, newRole models.Role) error {
	sc, ok := m.get(userID)
	if !ok {
		return nil
	}

	sc.SetRole(newRole)
	return m.Refresh(ctx, userID)
}

// AddParcel commits the draft, optimistically prepends it to the cached
// list, then refreshes so the cache converges on the committed state.
func (m *Manager) AddParcel(ctx context.Context, actor models.Actor, draft *models.ParcelDraft) (*models.Parcel, error) {
	if actor.Role != models.RoleSender {
		return nil, pkgerrors.ErrUnauthorized
	}

	created, err := m.parcelUC.CreateParcel(ctx, actor.ID, draft)
	if err != nil {
		return nil, err
	}

	if sc, ok := m.get(actor.ID.String()); ok {
		sc.PrependParcel(created)
	}

	if err := m.Refresh(ctx, actor.ID.String()); err != nil {
		logger.Warn("Failed to refresh session after parcel creation",
			logger.ErrorField(err),
			logger.String("user_id", actor.ID.String()),
		)
	}

	return created, nil
}

// Refresh reloads the cached collections from the source of truth.
// Guests and unknown users are a no-op. The loading flag is cleared on
// every exit path.
func (m *Manager) Refresh(ctx context.Context, userID string) error {
	sc, ok := m.get(userID)
	if !ok {
		return nil
	}

	role := sc.Role()
	if role == models.RoleGuest {
		sc.Replace(nil, nil)
		return nil
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		sc.SetLoading(false)
		return fmt.Errorf("invalid user id: %w", err)
	}

	sc.SetLoading(true)

	parcels, err := m.parcelUC.FetchParcels(ctx, role, uid)
	if err != nil {
		sc.SetLoading(false)
		return fmt.Errorf("failed to load parcels: %w", err)
	}

	var trips []*models.Trip
	switch role {
	case models.RoleTransporter:
		trips, err = m.tripUC.FetchTripsByTransporter(ctx, uid)
	case models.RoleSender:
		trips, err = m.tripUC.FetchTrips(ctx)
	}
	if err != nil {
		sc.SetLoading(false)
		return fmt.Errorf("failed to load trips: %w", err)
	}

	sc.Replace(parcels, trips)

	if err := m.redisClient.Delete(ctx, fmt.Sprintf(constants.KeySessionStale, userID)); err != nil {
		logger.Debug("Failed to clear session stale flag",
			logger.ErrorField(err),
			logger.String("user_id", userID),
		)
	}

	return nil
}

// MarkStale flags the user's context for refresh. A locally held
// context refreshes immediately; otherwise a Redis marker tells
// whichever instance holds it to refresh on next read.
func (m *Manager) MarkStale(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	if _, ok := m.get(userID); ok {
		return m.Refresh(ctx, userID)
	}

	return m.redisClient.Set(ctx, fmt.Sprintf(constants.KeySessionStale, userID), "1", staleTTL)
}

// Snapshot returns a copy of the user's current context, refreshing
// first when a staleness marker is pending. Callers without a context
// get the guest view.
func (m *Manager) Snapshot(ctx context.Context, userID string) (*session.Snapshot, error) {
	sc, ok := m.get(userID)
	if !ok {
		return session.GuestSnapshot(), nil
	}

	if _, err := m.redisClient.Get(ctx, fmt.Sprintf(constants.KeySessionStale, userID)); err == nil {
		if err := m.Refresh(ctx, userID); err != nil {
			logger.Warn("Failed to refresh stale session",
				logger.ErrorField(err),
				logger.String("user_id", userID),
			)
		}
	}

	return sc.Snapshot(), nil
}

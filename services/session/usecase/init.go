package usecase

import (
	"sync"

	"github.com/piresc/titipkan/internal/pkg/database"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/services/parcels"
	"github.com/piresc/titipkan/services/session"
	"github.com/piresc/titipkan/services/trips"
)

// Manager owns the per-user session contexts for this instance.
// Staleness markers go through Redis so event consumers on other
// instances can flag a context for refresh.
type Manager struct {
	cfg         *models.Config
	parcelUC    parcels.ParcelUC
	tripUC      trips.TripUC
	redisClient *database.RedisClient

	mu       sync.RWMutex
	contexts map[string]*session.Context
}

// NewManager creates a new session manager
func NewManager(
	cfg *models.Config,
	parcelUC parcels.ParcelUC,
	tripUC trips.TripUC,
	redisClient *database.RedisClient,
) *Manager {
	return &Manager{
		cfg:         cfg,
		parcelUC:    parcelUC,
		tripUC:      tripUC,
		redisClient: redisClient,
		contexts:    make(map[string]*session.Context),
	}
}

func (m *Manager) get(userID string) (*session.Context, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.contexts[userID]
	return sc, ok
}

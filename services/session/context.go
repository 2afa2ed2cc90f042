package session

import (
	"sync"
	"time"

	"github.com/piresc/titipkan/internal/pkg/models"
)

// Context is one user's cached session state. Mutation goes through
// the exported methods so the mutex never leaves this package; callers
// read it via Snapshot.
type Context struct {
	mu sync.RWMutex

	user        *models.User
	role        models.Role
	parcels     []*models.Parcel
	trips       []*models.Trip
	isLoading   bool
	refreshedAt time.Time
}

// NewContext creates a session context for an authenticated user,
// starting in the loading state until the first refresh lands.
func NewContext(user *models.User) *Context {
	return &Context{
		user:      user,
		role:      user.Role,
		isLoading: true,
	}
}

// Role returns the context's active role
func (c *Context) Role() models.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// SetRole switches the active role. The cached collections keep their
// old scoping until the next Replace.
func (c *Context) SetRole(role models.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.role = role
}

// SetLoading toggles the loading flag
func (c *Context) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isLoading = loading
}

// Replace swaps in freshly loaded collections wholesale and clears the
// loading flag.
func (c *Context) Replace(parcels []*models.Parcel, trips []*models.Trip) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parcels = parcels
	c.trips = trips
	c.isLoading = false
	c.refreshedAt = time.Now()
}

// PrependParcel optimistically places a just-created parcel at the head
// of the cached list. The next Replace reconciles it with the source of
// truth.
func (c *Context) PrependParcel(p *models.Parcel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parcels = append([]*models.Parcel{p}, c.parcels...)
}

// Snapshot is an immutable copy of a session context handed to handlers
type Snapshot struct {
	User         *models.User     `json:"user"`
	Role         models.Role      `json:"role"`
	Parcels      []*models.Parcel `json:"parcels"`
	Trips        []*models.Trip   `json:"trips"`
	IsLoading    bool             `json:"is_loading"`
	Capabilities []string         `json:"capabilities"`
	RefreshedAt  time.Time        `json:"refreshed_at"`
}

// Snapshot returns a copy of the context's current state
func (c *Context) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parcels := make([]*models.Parcel, len(c.parcels))
	copy(parcels, c.parcels)
	trips := make([]*models.Trip, len(c.trips))
	copy(trips, c.trips)

	return &Snapshot{
		User:         c.user,
		Role:         c.role,
		Parcels:      parcels,
		Trips:        trips,
		IsLoading:    c.isLoading,
		Capabilities: Capabilities(c.role),
		RefreshedAt:  c.refreshedAt,
	}
}

// GuestSnapshot is the context handed to unauthenticated callers
func GuestSnapshot() *Snapshot {
	return &Snapshot{
		Role:         models.RoleGuest,
		Capabilities: Capabilities(models.RoleGuest),
	}
}

// roleCapabilities is the action dispatch table: which operations each
// role may initiate from its session.
var roleCapabilities = map[models.Role][]string{
	models.RoleGuest:       {"track"},
	models.RoleSender:      {"track", "create_parcel", "assign_parcel", "confirm_delivery", "review"},
	models.RoleTransporter: {"track", "publish_trip", "accept_parcel", "advance_parcel", "review"},
	models.RoleReceiver:    {"track", "confirm_delivery"},
}

// Capabilities returns the operations available to a role. Unknown
// roles degrade to the guest set.
func Capabilities(role models.Role) []string {
	caps, ok := roleCapabilities[role]
	if !ok {
		caps = roleCapabilities[models.RoleGuest]
	}

	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// Package cooldown enforces a minimum window between successive quote
// submissions from the same client. It is a best-effort throttle, not a
// security control: a client that clears its marker can resubmit, and store
// failures never block a submission.
package cooldown

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stoneworks/lead-intake/pkg/logging"
)

// DefaultKey matches the marker name used by the web form.
const DefaultKey = "quote_cooldown_until"

// Clock supplies the current time so tests can control it.
type Clock func() time.Time

// Store persists the cooldown-until marker.
type Store interface {
	// Get returns the stored timestamp and whether a marker exists.
	Get(ctx context.Context, key string) (time.Time, bool, error)
	// Set stores the timestamp; ttl bounds how long the marker survives.
	Set(ctx context.Context, key string, until time.Time, ttl time.Duration) error
}

// Guard reads and arms the cooldown marker around submit attempts.
type Guard struct {
	store  Store
	clock  Clock
	window time.Duration
	key    string
	logger *logging.Logger
}

// NewGuard builds a Guard. A nil clock uses time.Now; an empty key uses DefaultKey.
func NewGuard(store Store, window time.Duration, clock Clock, logger *logging.Logger) *Guard {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Guard{store: store, clock: clock, window: window, key: DefaultKey, logger: logger}
}

// WithKey overrides the marker key (one marker per form surface if needed).
func (g *Guard) WithKey(key string) *Guard {
	g.key = key
	return g
}

// Remaining returns how long until the next submission is allowed. Zero means
// the client is clear to submit. Store errors are logged and treated as
// "no cooldown" so a broken store never blocks lead capture.
func (g *Guard) Remaining(ctx context.Context) time.Duration {
	if g == nil || g.store == nil {
		return 0
	}
	until, ok, err := g.store.Get(ctx, g.key)
	if err != nil {
		g.logger.Warn("cooldown store read failed", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	now := g.clock()
	if !now.Before(until) {
		return 0
	}
	return until.Sub(now)
}

// Arm starts a fresh cooldown window. Called only after a successfully
// persisted submission.
func (g *Guard) Arm(ctx context.Context) {
	if g == nil || g.store == nil {
		return
	}
	until := g.clock().Add(g.window)
	if err := g.store.Set(ctx, g.key, until, g.window); err != nil {
		g.logger.Warn("cooldown store write failed", "error", err)
	}
}

// MemoryStore keeps markers in-process. Suitable for tests and for the
// single-session use the form has in practice.
type MemoryStore struct {
	mu      sync.RWMutex
	markers map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{markers: make(map[string]time.Time)}
}

// Get returns the stored marker.
func (s *MemoryStore) Get(ctx context.Context, key string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.markers[key]
	return t, ok, nil
}

// Set stores the marker. The ttl is ignored; Remaining compares against the
// stored timestamp directly.
func (s *MemoryStore) Set(ctx context.Context, key string, until time.Time, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[key] = until
	return nil
}

// RedisStore persists markers in Redis so the throttle survives restarts and
// is shared across processes.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get reads the marker, reporting absence via the second return.
func (s *RedisStore) Get(ctx context.Context, key string) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}

// Set writes the marker with a TTL so stale markers expire on their own.
func (s *RedisStore) Set(ctx context.Context, key string, until time.Time, ttl time.Duration) error {
	return s.client.Set(ctx, key, strconv.FormatInt(until.UnixMilli(), 10), ttl).Err()
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

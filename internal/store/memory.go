package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/local-weather-forecast-card/internal/hass"
)

var (
	// ErrNotFound is returned when no state is known for an entity.
	ErrNotFound = errors.New("no state for entity")
)

// entry is one entity state plus the time the store received it.
type entry struct {
	State      hass.EntityState
	ReceivedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory store of the latest state of
// each entity. Nothing is persisted.
type MemoryStore struct {
	mu sync.RWMutex

	// key: entity id
	data map[string]entry

	// maxAge drops entities that have not been updated for this long (0 = keep forever).
	maxAge time.Duration
	now    func() time.Time
}

// NewMemoryStore creates a new MemoryStore. If maxAge is <= 0, entries never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]entry),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Apply records the given states, replacing earlier states of the same entities.
func (s *MemoryStore) Apply(states ...hass.EntityState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, st := range states {
		if st.EntityID == "" {
			continue
		}
		s.data[st.EntityID] = entry{State: st, ReceivedAt: now}
	}
	s.pruneLocked(now)
}

// Replace records snap and forgets the given ids that snap does not carry.
// Used after a full fetch, where a missing entity means it is gone.
func (s *MemoryStore) Replace(ids []string, snap hass.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, id := range ids {
		st, ok := snap[id]
		if !ok {
			delete(s.data, id)
			continue
		}
		if st.EntityID == "" {
			st.EntityID = id
		}
		s.data[id] = entry{State: st, ReceivedAt: now}
	}
	s.pruneLocked(now)
}

// Get returns the latest state of id.
func (s *MemoryStore) Get(id string) (hass.EntityState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || s.expired(e, s.now()) {
		return hass.EntityState{}, ErrNotFound
	}
	return e.State, nil
}

// Snapshot returns a copy of all live entity states.
func (s *MemoryStore) Snapshot() hass.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make(hass.Snapshot, len(s.data))
	for id, e := range s.data {
		if s.expired(e, now) {
			continue
		}
		out[id] = e.State
	}
	return out
}

func (s *MemoryStore) expired(e entry, now time.Time) bool {
	return s.maxAge > 0 && now.Sub(e.ReceivedAt) > s.maxAge
}

func (s *MemoryStore) pruneLocked(now time.Time) {
	if s.maxAge <= 0 {
		return
	}
	for id, e := range s.data {
		if s.expired(e, now) {
			delete(s.data, id)
		}
	}
}

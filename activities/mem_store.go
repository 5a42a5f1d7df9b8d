package activities

import (
	"slices"
	"sync"
)

// MemoryStore keeps the activity catalog in memory. All access is serialized
// behind a single mutex; the catalog is small enough that contention is not
// a concern.
type MemoryStore struct {
	mu              sync.Mutex
	catalog         map[string]Activity
	enforceCapacity bool
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithCapacityEnforcement makes Signup reject students once an activity's
// roster reaches max_participants.
func WithCapacityEnforcement() StoreOption {
	return func(s *MemoryStore) {
		s.enforceCapacity = true
	}
}

// NewMemoryStore creates a store holding a copy of the given seed catalog.
// The seed is not retained; later mutation of it does not affect the store.
func NewMemoryStore(seed map[string]Activity, opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		catalog: make(map[string]Activity, len(seed)),
	}
	for name, activity := range seed {
		s.catalog[name] = activity.Clone()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of the full catalog keyed by activity name.
func (s *MemoryStore) List() map[string]Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]Activity, len(s.catalog))
	for name, activity := range s.catalog {
		result[name] = activity.Clone()
	}
	return result
}

// Get returns a copy of the named activity, or ErrNotFound.
func (s *MemoryStore) Get(name string) (Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.catalog[name]
	if !ok {
		return Activity{}, ErrNotFound
	}
	return activity.Clone(), nil
}

// Signup adds email to the named activity's roster. Appends preserve signup
// order, so the roster lists students oldest first.
func (s *MemoryStore) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.catalog[name]
	if !ok {
		return ErrNotFound
	}
	if activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if s.enforceCapacity && activity.Full() {
		return ErrActivityFull
	}

	activity.Participants = append(slices.Clone(activity.Participants), email)
	s.catalog[name] = activity
	return nil
}

// Unregister removes email from the named activity's roster.
func (s *MemoryStore) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.catalog[name]
	if !ok {
		return ErrNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return ErrNotSignedUp
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	s.catalog[name] = activity
	return nil
}

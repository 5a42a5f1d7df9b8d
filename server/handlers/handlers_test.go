package handlers

import (
	"sync"

	"github.com/mergington/schoolactivities/activities"
)

// testStore returns a MemoryStore seeded like the real catalog.
func testStore(opts ...activities.StoreOption) *activities.MemoryStore {
	return activities.NewMemoryStore(map[string]activities.Activity{
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore various art techniques and create masterpieces",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"amelia@mergington.edu"},
		},
	}, opts...)
}

// mockRecorder captures metric calls for assertions.
type mockRecorder struct {
	mu            sync.Mutex
	signups       []string
	unregisters   []string
	rejections    []string
	lastRosterLen int
}

func (m *mockRecorder) RecordSignup(activity string, rosterSize int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signups = append(m.signups, activity)
	m.lastRosterLen = rosterSize
}

func (m *mockRecorder) RecordUnregister(activity string, rosterSize int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unregisters = append(m.unregisters, activity)
	m.lastRosterLen = rosterSize
}

func (m *mockRecorder) RecordRejection(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections = append(m.rejections, reason)
}

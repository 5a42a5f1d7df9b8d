// Package activities holds the activity catalog for the Mergington High
// School extracurricular service: the Activity record, the Store interface
// that request handlers are given, the mutex-guarded in-memory
// implementation, seed loading, and roster snapshots.
package activities

import "slices"

// Activity is a single school activity and its signup roster.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Clone returns a copy of the activity whose participant list shares no
// storage with the original.
func (a Activity) Clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	if a.Participants == nil {
		a.Participants = []string{}
	}
	return a
}

// HasParticipant reports whether email is on the activity's roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Full reports whether the roster has reached MaxParticipants.
// An activity with a non-positive limit is never full.
func (a Activity) Full() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

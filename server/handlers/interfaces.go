// Package handlers provides HTTP handlers for the activities server.
//
// Each handler is in its own file and implements http.Handler.
// Handlers use interfaces to access server dependencies, avoiding
// circular imports.
package handlers

import (
	"github.com/mergington/schoolactivities/activities"
)

// CatalogProvider provides read access to the activity catalog.
type CatalogProvider interface {
	List() map[string]activities.Activity
}

// Registrar mutates activity rosters.
type Registrar interface {
	Get(name string) (activities.Activity, error)
	Signup(name, email string) error
	Unregister(name, email string) error
}

// MetricsRecorder records signup traffic metrics.
type MetricsRecorder interface {
	RecordSignup(activity string, rosterSize int)
	RecordUnregister(activity string, rosterSize int)
	RecordRejection(reason string)
}

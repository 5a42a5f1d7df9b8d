package activities

import "errors"

// Sentinel errors returned by Store implementations. Handlers map these to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound is returned when the named activity does not exist.
	ErrNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp is returned when the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")

	// ErrNotSignedUp is returned when unregistering a student who is not on the roster.
	ErrNotSignedUp = errors.New("student is not signed up")

	// ErrActivityFull is returned when capacity enforcement is enabled and
	// the roster has reached max_participants.
	ErrActivityFull = errors.New("activity is full")
)

// Store is the interface request handlers use to read and mutate the
// activity catalog. Implementations must be safe for concurrent use.
type Store interface {
	// List returns a copy of the full catalog keyed by activity name.
	List() map[string]Activity

	// Get returns a copy of the named activity, or ErrNotFound.
	Get(name string) (Activity, error)

	// Signup adds email to the named activity's roster.
	// Returns ErrNotFound, ErrAlreadySignedUp, or ErrActivityFull.
	Signup(name, email string) error

	// Unregister removes email from the named activity's roster.
	// Returns ErrNotFound or ErrNotSignedUp.
	Unregister(name, email string) error
}

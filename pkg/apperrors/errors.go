// pkg/apperrors/errors.go
package apperrors

import "errors"

// Sentinel errors shared across services and handlers. Wrap with
// fmt.Errorf("...: %w", Err...) and test with errors.Is.
var (
	// ErrNotInDB marks a lookup for a note, revision, user or group
	// that does not exist. Propagated to the caller, never retried.
	ErrNotInDB = errors.New("not in database")

	// ErrPermissionsUpdateInconsistent marks a desired-state permission
	// update that names the same user or group more than once. Raised
	// before any mutation.
	ErrPermissionsUpdateInconsistent = errors.New("permissions update inconsistent")

	ErrClient        = errors.New("client error")
	ErrPermission    = errors.New("permission denied")
	ErrTokenNotValid = errors.New("token not valid")
	ErrTooManyTokens = errors.New("too many tokens")
)

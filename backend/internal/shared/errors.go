// ============================================================================
// backend/internal/shared/errors.go
// Sentinel errors shared across the service and storage layers
// ============================================================================

package shared

import "errors"

var (
	// ErrStudentNotFound is returned by keyed student lookups that expect
	// exactly one result.
	ErrStudentNotFound = errors.New("student not found")

	// ErrCourseNotFound is returned by keyed course lookups that expect
	// exactly one result.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidCredentials is returned when login email/password do not
	// match any known account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists is returned when registration targets an email that
	// is already taken.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidToken is returned when a session token is unknown.
	ErrInvalidToken = errors.New("invalid session token")
)

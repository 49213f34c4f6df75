package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error at the API boundary. Field
// names the offending input field in its wire spelling (e.g. "leaderId").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StorageFault represents a failed write against the underlying store. Read
// faults are absorbed by the store itself (empty result plus log entry); only
// write paths surface this error.
type StorageFault struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageFault) Error() string {
	return fmt.Sprintf("storage fault: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageFault) Unwrap() error {
	return e.Err
}

// AuthenticationError represents a credential mismatch. It is deliberately
// cause-blind: callers cannot tell an unknown user from a wrong password.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSingerNotFound     = &NotFoundError{Entity: "singer"}
	ErrMusicianNotFound   = &NotFoundError{Entity: "musician"}
	ErrInstrumentNotFound = &NotFoundError{Entity: "instrument"}
	ErrSongNotFound       = &NotFoundError{Entity: "song"}
	ErrScheduleNotFound   = &NotFoundError{Entity: "schedule"}
	ErrImpedimentNotFound = &NotFoundError{Entity: "impediment"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
)

// Business Logic Errors
var (
	ErrUsernameTaken = errors.New("username is already taken")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStorageFault checks if an error is a StorageFault
func IsStorageFault(err error) bool {
	var fault *StorageFault
	return errors.As(err, &fault)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "singer not found", ErrSingerNotFound.Error())
	assert.Equal(t, "schedule not found", ErrScheduleNotFound.Error())
}

func TestNotFoundErrorIsComparesEntity(t *testing.T) {
	err := fmt.Errorf("delete failed: %w", ErrSongNotFound)

	assert.True(t, errors.Is(err, ErrSongNotFound))
	assert.False(t, errors.Is(err, ErrSingerNotFound))
}

func TestIsNotFoundSeesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrMusicianNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestValidationErrorMessage(t *testing.T) {
	withField := &ValidationError{Field: "leaderId", Message: "a leader must be selected"}
	assert.Equal(t, "validation error: leaderId - a leader must be selected", withField.Error())

	withoutField := &ValidationError{Message: "bad payload"}
	assert.Equal(t, "validation error: bad payload", withoutField.Error())

	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", withField)))
	assert.False(t, IsValidation(ErrSingerNotFound))
}

func TestStorageFaultUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	fault := &StorageFault{Op: "upsert", Collection: "songs", Err: cause}

	assert.Equal(t, "storage fault: upsert songs: disk full", fault.Error())
	assert.True(t, errors.Is(fault, cause))
	assert.True(t, IsStorageFault(fmt.Errorf("save: %w", fault)))
}

func TestIsAuthentication(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrUsernameTaken))
}

package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Error(t *testing.T) {
	assert.EqualError(t, NewValidationError("Skill name required"), "Skill name required")

	// Store failures keep the underlying cause visible for logs.
	cause := errors.New("pq: connection refused")
	assert.EqualError(t, NewStoreError(cause), "unexpected store failure: pq: connection refused")

	assert.EqualError(t, &CustomError{Err: ErrStudentNotFound}, "student not found")
	assert.EqualError(t, &CustomError{}, "unknown error")
}

func TestCustomError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, NewValidationError("x"), ErrValidationFailed)
	assert.ErrorIs(t, NewDuplicateKeyError("x"), ErrDuplicateKey)
	assert.ErrorIs(t, NewStoreError(errors.New("boom")), ErrStoreFailure)
}

func TestCustomError_WithField(t *testing.T) {
	err := NewValidationError("Semester Start must be YYYY-MM-DD").WithField("semesterStart")
	assert.Equal(t, "semesterStart", err.Field)

	var ce *CustomError
	assert.ErrorAs(t, error(err), &ce)
	assert.Equal(t, "semesterStart", ce.Field)
}

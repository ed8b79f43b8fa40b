package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrIO.Code, "failed to save students")

	assert.Equal(t, "IO_FAILURE", err.Code)
	assert.ErrorContains(t, err, "failed to save students")
	assert.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	appErr := Clone(ErrNotFound, "student not found")
	wrapped := fmt.Errorf("enroll: %w", appErr)

	got := FromError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrNotFound.Code, got.Code)
	assert.Equal(t, "student not found", got.Message)

	plain := FromError(errors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)

	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrConflict, "course code already exists")
	assert.Equal(t, "course code already exists", clone.Message)
	assert.Equal(t, "record already exists", ErrConflict.Message)
	assert.Equal(t, ErrConflict.Code, clone.Code)
}

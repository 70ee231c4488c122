package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFollowsWrappedErrors(t *testing.T) {
	base := NewError(CodeNotFound, "draft not found", nil)
	wrapped := fmt.Errorf("load draft: %w", base)

	assert.True(t, Is(wrapped, CodeNotFound))
	assert.False(t, Is(wrapped, CodeConflict))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestCodeOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestValidationErrorCarriesFields(t *testing.T) {
	err := NewValidationError("invalid application", map[string]string{"name": "Name is required"})

	assert.Equal(t, CodeValidation, CodeOf(err))
	assert.Equal(t, "Name is required", FieldsOf(err)["name"])
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(CodeUnavailable, "submission failed", cause)

	assert.Equal(t, "submission failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestParseUUID(t *testing.T) {
	id := NewUUID()
	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

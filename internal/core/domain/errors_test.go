package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrOperationInProgress", ErrOperationInProgress},
		{"ErrValidation", ErrValidation},
		{"ErrAuthentication", ErrAuthentication},
		{"ErrProvider", ErrProvider},
		{"ErrEmptyResponse", ErrEmptyResponse},
		{"ErrMalformedResponse", ErrMalformedResponse},
		{"ErrStorage", ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("job description must be longer than %d characters", MinJobTextLength)

	assert.Equal(t, "validation failed: job description must be longer than 50 characters", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrProvider)

	wrapped := fmt.Errorf("optimize: %w", err)
	var target *ValidationError
	require.True(t, errors.As(wrapped, &target))
	assert.Contains(t, target.Reason, "50 characters")
}

func TestAuthenticationError(t *testing.T) {
	err := &AuthenticationError{StatusCode: 400}

	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), "invalid API key")
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{StatusCode: 503, Body: "overloaded"}

	assert.Equal(t, "gemini API error (503): overloaded", err.Error())
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestMalformedResponseError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &MalformedResponseError{Raw: "not json"}
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Equal(t, "failed to parse model response as JSON. Raw: not json", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &MalformedResponseError{Raw: "{", Err: cause}
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.ErrorIs(t, err, cause)
	})
}

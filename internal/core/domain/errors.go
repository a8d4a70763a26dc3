package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOperationInProgress indicates the same operation is already running.
	ErrOperationInProgress = errors.New("operation in progress")

	// Pipeline Errors.

	// ErrValidation indicates an operation precondition was not met.
	// The operation was never attempted.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication indicates the provider rejected the API key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrProvider indicates any other non-success provider response.
	ErrProvider = errors.New("provider error")

	// ErrEmptyResponse indicates a success response with no usable text.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrMalformedResponse indicates the model text could not be parsed.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrStorage indicates local persistence is unavailable.
	ErrStorage = errors.New("storage unavailable")
)

// ValidationError describes which precondition blocked an operation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AuthenticationError is returned when the provider reports an invalid key.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return "invalid API key: check your Gemini API key with 'resumebuddy settings api-key'"
}

// Unwrap allows errors.Is(err, ErrAuthentication).
func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// ProviderError carries the status and raw body of a failed provider call.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gemini API error (%d): %s", e.StatusCode, e.Body)
}

// Unwrap allows errors.Is(err, ErrProvider).
func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// MalformedResponseError carries a truncated prefix of the unparseable text.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON. Raw: %s", e.Raw)
}

// Unwrap allows errors.Is(err, ErrMalformedResponse).
func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}

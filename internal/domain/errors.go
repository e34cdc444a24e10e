package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrExternalProvider = errors.New("external provider failure")

	// ErrAlreadyAnswered is returned when an assignment already has a recording.
	ErrAlreadyAnswered = fmt.Errorf("assignment already answered: %w", ErrValidation)
	// ErrInvalidDeviceToken is reported by push senders for tokens the provider
	// no longer accepts.
	ErrInvalidDeviceToken = errors.New("invalid device token")
	// ErrSignedURLUnsupported is returned by blob stores that cannot mint
	// direct download URLs.
	ErrSignedURLUnsupported = errors.New("signed urls not supported")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReminderIneligibleError is returned when the reminder policy denies a remind.
// CooldownRemaining is set only for ReminderReasonCooldownActive.
type ReminderIneligibleError struct {
	Reason            ReminderReason
	CooldownRemaining time.Duration
}

func (e *ReminderIneligibleError) Error() string {
	if e.Reason == ReminderReasonCooldownActive {
		return fmt.Sprintf("reminder not allowed: %s (%s remaining)", e.Reason, e.CooldownRemaining.Round(time.Second))
	}
	return fmt.Sprintf("reminder not allowed: %s", e.Reason)
}

func (e *ReminderIneligibleError) Unwrap() error { return ErrValidation }

// ProviderError wraps a failure reported by an outbound delivery provider.
type ProviderError struct {
	Channel Channel
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Channel, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ProviderError) Unwrap() []error { return []error{ErrExternalProvider, e.Err} }

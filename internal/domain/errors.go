package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
	ErrEmptyResult      = errors.New("empty result")
	ErrProvider         = errors.New("provider error")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrBusy             = errors.New("translation already in progress")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found in one input.
type ValidationError struct {
	Errors []FieldError
}

// Error lists the fields in order: "validation: title: required; dialect: unknown".
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation: invalid input"
	}
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
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

// ProviderError is returned when an external API (translation or speech)
// fails at the transport level or answers with a non-success status.
// StatusCode is 0 when no response was received.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Provider, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return e.Provider + ": provider error"
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProvider}
	}
	return []error{ErrProvider, e.Err}
}

// NewProviderError builds a ProviderError for the named provider.
func NewProviderError(provider string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, StatusCode: status, Err: err}
}

// StoreError is returned by the history store client when the backend is
// unreachable or answers with an unexpected status.
type StoreError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *StoreError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("store %s: status %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return "store " + e.Op + ": unavailable"
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStoreUnavailable}
	}
	return []error{ErrStoreUnavailable, e.Err}
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for a login attempt. Every failure that reaches the user
// is one of these, or a *ValidationError for a single form field.
var (
	// ErrAuthenticationFailed indicates the backend answered and rejected the
	// credentials or the request.
	ErrAuthenticationFailed = errors.New("authentication rejected by backend")

	// ErrTransport indicates no usable answer was obtained: the request could
	// not be completed or the response body could not be read.
	ErrTransport = errors.New("authentication transport failure")
)

// AuthError carries the details of a rejection. It always unwraps to
// ErrAuthenticationFailed.
type AuthError struct {
	StatusCode int
	// Message is the server-provided explanation. It may be empty.
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrAuthenticationFailed, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrAuthenticationFailed, e.StatusCode, e.Message)
}

func (e *AuthError) Unwrap() error { return ErrAuthenticationFailed }

// ValidationError is a locally detected problem with one form field.
// It is never sent to the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

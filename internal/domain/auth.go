package domain

import (
	"context"
	"log/slog"
)

// DisplayNameKey is the well-known storage key the display name is persisted under.
const DisplayNameKey = "userName"

// Credentials is the payload of an authentication request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogValue keeps the password out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.Email))
}

// AuthResult is what a successful authentication returns.
type AuthResult struct {
	// Name is the user-facing display name. Empty if the backend omitted it.
	Name string `json:"name"`
}

// Authenticator performs a single authentication attempt against the backend.
// Implementations return ErrAuthenticationFailed (usually as *AuthError) when
// the backend rejects the request and ErrTransport when no usable answer was
// obtained.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error)
}

// ClientStore is durable storage owned by the client: a session cookie in the
// browser, a file on disk for the CLI.
type ClientStore interface {
	Set(ctx context.Context, key, value string) error
}

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(route string)
}

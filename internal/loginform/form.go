// Package loginform holds the login form's state and its submit cycle,
// independent of how the form is rendered.
//
// A Form is driven by events: SetEmail and SetPassword for input, Submit for
// the submit button, Close when the form goes away. Submit validates both
// fields, and only if both pass makes one call to the Authenticator. On
// success the display name is written to the ClientStore and the Navigator is
// sent to the home route.
package loginform

import (
	"context"
	"errors"
	"sync"

	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/validation"
)

// Status messages shown after a submit attempt completes.
const (
	MsgSuccess        = "Login successful!"
	MsgLoginFailed    = "Login failed. Check your credentials."
	MsgTransportError = "An error occurred. Please try again."
)

// DefaultHomeRoute is where a successful login navigates to.
const DefaultHomeRoute = "/"

// Form owns the state of one rendered login form. It is safe for concurrent
// use; the lock is not held while the authentication request is in flight.
type Form struct {
	auth      domain.Authenticator
	store     domain.ClientStore
	nav       domain.Navigator
	homeRoute string

	mu     sync.Mutex
	state  State
	closed bool
}

// Option configures a Form.
type Option func(*Form)

// WithHomeRoute overrides the route navigated to on success.
func WithHomeRoute(route string) Option {
	return func(f *Form) {
		if route != "" {
			f.homeRoute = route
		}
	}
}

// WithStatusMessage starts the form showing the status message of an
// earlier attempt. It stays until the next attempt that reaches the backend.
func WithStatusMessage(msg string) Option {
	return func(f *Form) { f.state.Message = msg }
}

// New creates an empty form in the Idle phase.
func New(auth domain.Authenticator, store domain.ClientStore, nav domain.Navigator, opts ...Option) *Form {
	f := &Form{
		auth:      auth,
		store:     store,
		nav:       nav,
		homeRoute: DefaultHomeRoute,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetEmail records the current email text.
func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Email = email
}

// SetPassword records the current password text.
func (f *Form) SetPassword(password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Password = password
}

// State returns a snapshot of the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Close marks the form as gone. Responses that arrive afterwards are dropped:
// they neither change state nor write to the store nor navigate.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// Submit runs one submit cycle and returns the resulting state.
//
// Overlapping calls are allowed. Each makes its own request and the last one
// to resolve sets the status message.
func (f *Form) Submit(ctx context.Context) State {
	f.mu.Lock()
	if f.closed {
		defer f.mu.Unlock()
		return f.state
	}

	f.state.Phase = PhaseValidating
	f.state.Errors = validation.FieldErrors{}
	errs := validation.Validate(validation.Input{
		Email:    f.state.Email,
		Password: f.state.Password,
	})
	if !errs.Empty() {
		f.state.Errors = errs
		f.state.Phase = PhaseHaltedWithErrors
		defer f.mu.Unlock()
		return f.state
	}

	creds := domain.Credentials{Email: f.state.Email, Password: f.state.Password}
	f.state.Phase = PhaseSubmitting
	f.mu.Unlock()

	res, err := f.auth.Authenticate(ctx, creds)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.state
	}

	if err != nil {
		f.state.Message = failureMessage(err)
		f.state.Phase = PhaseFailed
		return f.state
	}

	var name string
	if res != nil {
		name = res.Name
	}
	if err := f.store.Set(ctx, domain.DisplayNameKey, name); err != nil {
		f.state.Message = MsgTransportError
		f.state.Phase = PhaseFailed
		return f.state
	}
	f.state.Message = MsgSuccess
	f.state.Phase = PhaseSucceeded
	f.nav.Navigate(f.homeRoute)
	return f.state
}

// failureMessage resolves an Authenticator error into the text shown to the user.
func failureMessage(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		if authErr.Message != "" {
			return authErr.Message
		}
		return MsgLoginFailed
	}
	if errors.Is(err, domain.ErrAuthenticationFailed) {
		return MsgLoginFailed
	}
	return MsgTransportError
}

package view

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/loginform/internal/domain"
)

const userSessionName = "user-session"

// SessionStore implements domain.ClientStore with the browser's session
// cookie. Values survive across requests until the cookie expires.
type SessionStore struct {
	c echo.Context
}

// NewSessionStore binds a store to the current request.
func NewSessionStore(c echo.Context) *SessionStore {
	return &SessionStore{c: c}
}

// Set stores value under key and writes the updated cookie to the response.
// It must be called before the response body is written.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	sess, err := session.Get(userSessionName, s.c)
	if err != nil {
		return fmt.Errorf("failed to load user session: %w", err)
	}
	sess.Values[key] = value
	if err := sess.Save(s.c.Request(), s.c.Response()); err != nil {
		return fmt.Errorf("failed to save user session: %w", err)
	}
	return nil
}

// DisplayName returns the persisted display name, or "" if none was stored.
func DisplayName(c echo.Context) string {
	sess, err := session.Get(userSessionName, c)
	if err != nil {
		return ""
	}
	name, _ := sess.Values[domain.DisplayNameKey].(string)
	return name
}

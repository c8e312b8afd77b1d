package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName    = "flash-session"
	flashKeySuccess     = "success"
	// flashKeyLoginStatus carries the login form's status message from one
	// POST to the next. It is never shown as a banner.
	flashKeyLoginStatus = "login-status"
)

// FlashData holds the one-shot messages to show on the next rendered page.
type FlashData struct {
	Success []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetLoginStatus remembers the status message of the login attempt just made.
func SetLoginStatus(c echo.Context, message string) {
	setFlash(c, flashKeyLoginStatus, message)
}

// PopLoginStatus returns the status message left by the previous login
// attempt and clears it. It returns "" if there is none.
func PopLoginStatus(c echo.Context) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	values := toStrings(sess.Flashes(flashKeyLoginStatus))
	if len(values) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	return values[len(values)-1]
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() returns the messages and removes them from the session.
	successFlashes := sess.Flashes(flashKeySuccess)
	if len(successFlashes) == 0 {
		return data
	}

	data.Success = toStrings(successFlashes)
	// Persist the cleared flashes.
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

package handlers_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/handlers"
	"github.com/nfrund/loginform/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// mockAuthenticator records every call and answers with res/err.
type mockAuthenticator struct {
	mu    sync.Mutex
	calls []domain.Credentials
	res   *domain.AuthResult
	err   error
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, creds)
	return m.res, m.err
}

func setupLoginTest(auth domain.Authenticator) *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	loginHandler := handlers.NewLoginHandler(auth, rendering.New(), "/")
	homeHandler := handlers.NewHomeHandler()
	e.GET("/", homeHandler.HomeGet)
	e.GET("/login", loginHandler.LoginGet)
	e.POST("/login", loginHandler.LoginPost)
	return e
}

func postLogin(e *echo.Echo, email, password string, htmx bool) *httptest.ResponseRecorder {
	return postLoginWithCookies(e, email, password, htmx, nil)
}

func postLoginWithCookies(e *echo.Echo, email, password string, htmx bool, cookies []*http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// latestCookies returns the cookies a response set, keeping only the last
// value written for each name, as a browser would.
func latestCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := byName[c.Name]; !seen {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

// sessionFromResponse decodes the named session from the cookies a response set.
func sessionFromResponse(t *testing.T, rec *httptest.ResponseRecorder, name string) *sessions.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	sess, err := sessions.NewCookieStore([]byte(testSessionSecret)).Get(req, name)
	require.NoError(t, err)
	return sess
}

func TestLoginGet(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Login - Login Form</title>")
	assert.Contains(t, body, `id="login-card"`)
	assert.Contains(t, body, "User Login")
}

func TestLoginPost_ValidationHalts(t *testing.T) {
	auth := &mockAuthenticator{}
	e := setupLoginTest(auth)

	rec := postLogin(e, "", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Email is required.")
	assert.Contains(t, body, "Password is required.")
	assert.NotContains(t, body, "login-message")
	assert.Empty(t, auth.calls, "no network call on validation failure")
}

func TestLoginPost_Success(t *testing.T) {
	auth := &mockAuthenticator{res: &domain.AuthResult{Name: "Jane"}}
	e := setupLoginTest(auth)

	rec := postLogin(e, "user@example.com", "Valid1!pass", false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	require.Len(t, auth.calls, 1)
	assert.Equal(t, domain.Credentials{Email: "user@example.com", Password: "Valid1!pass"}, auth.calls[0])

	userSess := sessionFromResponse(t, rec, "user-session")
	assert.Equal(t, "Jane", userSess.Values["userName"])

	flashSess := sessionFromResponse(t, rec, "flash-session")
	assert.Equal(t, []interface{}{"Login successful!"}, flashSess.Flashes("success"))
}

func TestLoginPost_SuccessHTMX(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{res: &domain.AuthResult{Name: "Jane"}})

	rec := postLogin(e, "user@example.com", "Valid1!pass", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	assert.Empty(t, rec.Body.String())
}

func TestLoginPost_Rejected(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &domain.AuthError{StatusCode: 401, Message: "Invalid credentials"}, "Invalid credentials"},
		{"no server message", &domain.AuthError{StatusCode: 401}, "Login failed. Check your credentials."},
		{"transport", domain.ErrTransport, "An error occurred. Please try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := setupLoginTest(&mockAuthenticator{err: tc.err})

			rec := postLogin(e, "user@example.com", "Valid1!pass", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tc.want)
			assert.Contains(t, body, `value="user@example.com"`, "email is kept")
			assert.NotContains(t, body, "Valid1!pass", "password is never echoed")

			for _, c := range rec.Result().Cookies() {
				assert.NotEqual(t, "user-session", c.Name, "no display name stored on failure")
			}
		})
	}
}

func TestLoginPost_HTMXFragment(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{})

	rec := postLogin(e, "abc", "Valid1!pass", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="login-card"`), "htmx gets only the card")
	assert.Contains(t, body, "Enter a valid email address.")
	assert.NotContains(t, body, "<!doctype html>")
}

func TestHomeGet_AfterLogin(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{res: &domain.AuthResult{Name: "Jane"}})
	loginRec := postLogin(e, "user@example.com", "Valid1!pass", false)
	require.Equal(t, http.StatusSeeOther, loginRec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range loginRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome, Jane!")
	assert.Contains(t, body, "Login successful!")
}

func TestHomeGet_Anonymous(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Welcome!</h1>")
}

func TestLoginPost_HaltKeepsPreviousStatus(t *testing.T) {
	auth := &mockAuthenticator{err: &domain.AuthError{StatusCode: 401, Message: "Invalid credentials"}}
	e := setupLoginTest(auth)

	first := postLogin(e, "user@example.com", "Valid1!pass", false)
	require.Contains(t, first.Body.String(), "Invalid credentials")

	second := postLoginWithCookies(e, "abc", "Valid1!pass", true, latestCookies(first))
	body := second.Body.String()
	assert.Contains(t, body, "Enter a valid email address.")
	assert.Contains(t, body, "Invalid credentials", "status survives a validation halt")
	assert.Len(t, auth.calls, 1)

	third := postLoginWithCookies(e, "", "", true, latestCookies(second))
	assert.Contains(t, third.Body.String(), "Invalid credentials", "and keeps surviving")
}

func TestLoginGet_DiscardsPreviousStatus(t *testing.T) {
	e := setupLoginTest(&mockAuthenticator{err: &domain.AuthError{StatusCode: 401, Message: "Invalid credentials"}})
	failed := postLogin(e, "user@example.com", "Valid1!pass", false)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, c := range latestCookies(failed) {
		req.AddCookie(c)
	}
	page := httptest.NewRecorder()
	e.ServeHTTP(page, req)
	require.Equal(t, http.StatusOK, page.Code)
	assert.NotContains(t, page.Body.String(), "Invalid credentials")

	halted := postLoginWithCookies(e, "abc", "", true, latestCookies(page))
	assert.NotContains(t, halted.Body.String(), "Invalid credentials")
}

func TestLoginPost_LogsWithoutPassword(t *testing.T) {
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })

	e := setupLoginTest(&mockAuthenticator{err: &domain.AuthError{StatusCode: 401}})
	postLogin(e, "user@example.com", "Valid1!pass", false)

	out := buf.String()
	assert.Contains(t, out, "Failed login attempt")
	assert.Contains(t, out, "creds.email=user@example.com")
	assert.NotContains(t, out, "Valid1!pass")
}

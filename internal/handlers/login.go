package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/loginform"
	"github.com/nfrund/loginform/internal/middleware"
	"github.com/nfrund/loginform/internal/rendering"
	"github.com/nfrund/loginform/internal/view"
	"github.com/nfrund/loginform/web/layouts"
	"github.com/nfrund/loginform/web/pages"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXRedirect = "HX-Redirect"
)

// LoginHandler serves the login page and drives one login form submit per POST.
type LoginHandler struct {
	auth      domain.Authenticator
	renderer  rendering.Renderer
	homeRoute string
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(auth domain.Authenticator, renderer rendering.Renderer, homeRoute string) *LoginHandler {
	return &LoginHandler{
		auth:      auth,
		renderer:  renderer,
		homeRoute: homeRoute,
	}
}

// loginRequest is the submitted form.
type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// redirect records where the form asked to navigate so the handler can turn
// it into an HTTP redirect.
type redirect struct {
	route string
}

func (r *redirect) Navigate(route string) { r.route = route }

// LoginGet renders an empty login form (GET /login). A status message left
// by an earlier form is discarded.
func (h *LoginHandler) LoginGet(c echo.Context) error {
	view.PopLoginStatus(c)
	page := layouts.Base("Login", view.GetFlashData(c), pages.Login(loginform.State{}))
	return c.Render(http.StatusOK, "", page)
}

// LoginPost handles the login form submission (POST /login).
//
// On success the display name goes into the session cookie, the status
// message becomes a flash and the browser is sent home. Otherwise the form
// is re-rendered with its errors: as a fragment for htmx, as a full page
// for a plain form post. The status message is carried to the next POST so
// that a resubmit halted by validation still shows it.
func (h *LoginHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	creds := domain.Credentials{Email: req.Email, Password: req.Password}

	nav := &redirect{}
	form := loginform.New(h.auth, view.NewSessionStore(c), nav,
		loginform.WithHomeRoute(h.homeRoute),
		loginform.WithStatusMessage(view.PopLoginStatus(c)),
	)
	// The request may be abandoned mid-flight; nothing may be written after that.
	defer form.Close()

	form.SetEmail(creds.Email)
	form.SetPassword(creds.Password)
	state := form.Submit(ctx)

	switch state.Phase {
	case loginform.PhaseSucceeded:
		logger.Info("Login succeeded", "creds", creds)
		view.SetFlashSuccess(c, state.Message)
		if isHTMX(c) {
			c.Response().Header().Set(headerHXRedirect, nav.route)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, nav.route)

	case loginform.PhaseFailed:
		logger.Warn("Failed login attempt", "creds", creds, "status_message", state.Message)

	case loginform.PhaseHaltedWithErrors:
		logger.Debug("Login form failed validation",
			"email_error", state.Errors.Email,
			"password_error", state.Errors.Password)
	}

	if state.Message != "" {
		view.SetLoginStatus(c, state.Message)
	}
	return h.renderForm(c, state)
}

func (h *LoginHandler) renderForm(c echo.Context, state loginform.State) error {
	card := pages.Login(state)
	if isHTMX(c) {
		fragment, err := h.renderer.RenderFragment(c.Request().Context(), card)
		if err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, fragment)
	}
	return c.Render(http.StatusOK, "", layouts.Base("Login", view.GetFlashData(c), card))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(headerHXRequest) == "true"
}

package server

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/loginform/internal/authclient"
	"github.com/nfrund/loginform/internal/config"
	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/handlers"
	"github.com/nfrund/loginform/internal/middleware"
	"github.com/nfrund/loginform/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          config.Provider
	homeHandler  *handlers.HomeHandler
	loginHandler *handlers.LoginHandler
}

// New creates a Server that authenticates against the configured endpoint.
func New(cfg config.Provider) *Server {
	return NewWithAuthenticator(cfg, authclient.New(cfg.GetAuthEndpoint()))
}

// NewWithAuthenticator creates a Server with an explicit Authenticator,
// useful for testing.
func NewWithAuthenticator(cfg config.Provider, auth domain.Authenticator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(requestLogger())
	e.Use(echomw.Recover())

	// Configure and use session middleware. The cookie store doubles as the
	// client-side storage the display name is persisted in.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	renderer := rendering.New()
	e.Renderer = renderer
	setupErrorHandling(e)

	return &Server{
		E:            e,
		Cfg:          cfg,
		homeHandler:  handlers.NewHomeHandler(),
		loginHandler: handlers.NewLoginHandler(auth, renderer, cfg.GetHomeRoute()),
	}
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/loginform/web/pages"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.GET(pages.RouteLogin, s.loginHandler.LoginGet)
	s.E.POST(pages.RouteLogin, s.loginHandler.LoginPost)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

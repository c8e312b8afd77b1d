package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/loginform/internal/view"
	"github.com/nfrund/loginform/web/layouts"
	"github.com/nfrund/loginform/web/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the home page, greeting the user by the display name
// stored at login and showing any pending flash messages.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	content := view.AdaptTemplToGomponent(c.Request().Context(), pages.Home(view.DisplayName(c)))
	return c.Render(http.StatusOK, "", layouts.Base("Home", view.GetFlashData(c), content))
}

package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders view components. Both templ.Component and anything with
// a Render(io.Writer) error method (gomponents.Node) are accepted.
type Renderer interface {
	echo.Renderer

	// RenderFragment renders a component to bytes, for htmx swaps.
	RenderFragment(ctx context.Context, component any) ([]byte, error)
}

// ComponentRenderer is the Renderer used by the server.
type ComponentRenderer struct{}

// New creates a ComponentRenderer.
func New() *ComponentRenderer {
	return &ComponentRenderer{}
}

// node is the structural shape of gomponents.Node.
type node interface {
	Render(w io.Writer) error
}

func (r *ComponentRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T: want templ.Component or gomponents.Node", component)
	}
}

// RenderFragment implements Renderer.
func (r *ComponentRenderer) RenderFragment(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements echo.Renderer for c.Render(status, name, component).
// The component travels in data; name is ignored.
func (r *ComponentRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}

package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderFragment(t *testing.T) {
	r := New()
	ctx := context.Background()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderFragment(ctx, html.Div(html.ID("x"), g.Text("a<b")))
		require.NoError(t, err)
		assert.Equal(t, `<div id="x">a&lt;b</div>`, string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>hi</span>")
			return err
		})
		out, err := r.RenderFragment(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, "<span>hi</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderFragment(ctx, 42)
		assert.ErrorContains(t, err, "unsupported component type int")
	})
}

func TestRender_EchoIntegration(t *testing.T) {
	e := echo.New()
	e.Renderer = New()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", html.P(g.Text("page")))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>page</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

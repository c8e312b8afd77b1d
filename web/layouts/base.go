package layouts

import (
	"github.com/nfrund/loginform/internal/view"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is loaded on every page so forms can swap in place.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell and renders any pending
// flash messages above it.
func Base(title string, flashes view.FlashData, content g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.StyleEl(g.Raw(stylesheet)),
			h.Script(h.Src(htmxSrc)),
		},
		Body: []g.Node{
			h.Main(
				Flashes(flashes),
				content,
			),
		},
	})
}

// Flashes renders one banner per flash message. It renders nothing when
// there are none.
func Flashes(flashes view.FlashData) g.Node {
	if len(flashes.Success) == 0 {
		return nil
	}
	return h.Div(h.ID("flashes"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.Div(h.Class("flash flash-success"), g.Text(msg))
		}),
	)
}

package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Home greets the user by the display name persisted at login. An empty name
// gets a generic greeting and a link to the login page.
func Home(displayName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := "Welcome!"
		if displayName != "" {
			greeting = fmt.Sprintf("Welcome, %s!", displayName)
		}
		_, err := fmt.Fprintf(w,
			`<section class="lf-home"><h1>%s</h1><p><a class="lf-link" href="%s">Log in</a></p></section>`,
			templ.EscapeString(greeting), templ.EscapeString(RouteLogin))
		return err
	})
}

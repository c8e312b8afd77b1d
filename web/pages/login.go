package pages

import (
	"github.com/nfrund/loginform/internal/loginform"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Login renders the login card for the given form state. The card is both the
// page body and the fragment returned to htmx submits. The password is never
// echoed back.
func Login(state loginform.State) g.Node {
	return Div(ID(LoginCardID), Class("lf-container"),
		Form(Class("lf-form"),
			Action(RouteLogin), Method("post"), g.Attr("novalidate"),
			hx.Post(RouteLogin), hx.Target("#"+LoginCardID), hx.Swap("outerHTML"),

			H2(Class("lf-title"), g.Raw(userLoginIcon), g.Text("User Login")),

			Input(Type("email"), Name("email"), Class("lf-input"),
				Placeholder("Enter your email"), Value(state.Email), AutoComplete("email")),
			fieldError("email-error", state.Errors.Email),

			Input(Type("password"), Name("password"), Class("lf-input"),
				Placeholder("Enter your password"), AutoComplete("current-password")),
			fieldError("password-error", state.Errors.Password),

			Div(Class("lf-forgot"),
				A(Href(RouteForgotPassword), Class("lf-link"), g.Text("Forgot Password?")),
			),

			Button(Type("submit"), Class("lf-button"), g.Text("Login")),

			// Placeholder: there is no Google sign-in flow behind it.
			Div(Class("lf-social"),
				Button(Type("button"), Class("lf-gmail"), g.Raw(googleIcon), g.Text("Sign Up with Gmail")),
			),

			Div(Class("lf-no-account"),
				g.Text("Don’t have an account? "),
				A(Href(RouteRegister), Class("lf-link"), g.Text("Register")),
			),
		),
		g.If(state.Message != "",
			Div(ID("login-message"), Class("lf-message"), g.Text(state.Message)),
		),
	)
}

func fieldError(id, msg string) g.Node {
	if msg == "" {
		return nil
	}
	return Div(ID(id), Class("lf-error"), g.Text(msg))
}

const userLoginIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" fill="currentColor" viewBox="0 0 24 24"><path d="M12 12c2.21 0 4-1.79 4-4s-1.79-4-4-4-4 1.79-4 4 1.79 4 4 4zm0 2c-4.42 0-8 3.58-8 8v1h16v-1c0-4.42-3.58-8-8-8z"/></svg>`

const googleIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48" width="24px" height="24px">` +
	`<path fill="#EA4335" d="M24 9.5c3.5 0 6.6 1.3 9 3.4l6.8-6.8C35.4 2.8 30.2 0 24 0 14.8 0 6.8 5.8 3 14l7.7 6c2-6.2 7.8-10.5 13.3-10.5z"/>` +
	`<path fill="#34A853" d="M48 24c0-1.7-.2-3.3-.6-4.9H24v9.3h13.6c-.6 3.5-2.6 6.6-5.6 8.7l7.7 6c4.6-4.3 7.3-10.7 7.3-18.1z"/>` +
	`<path fill="#4A90E2" d="M10.6 28.1c-1.3-1.9-2-4.3-2-6.8 0-2.4.7-4.8 2-6.8l-7.7-6C1.6 12.8 0 17.1 0 24c0 6.9 1.7 12.2 4.9 15.6l7.7-6c-2.6-2-4-5-4-8.5z"/>` +
	`<path fill="#FBBC05" d="M24 48c6.2 0 11.4-2 15.3-5.5l-7.7-6c-2 1.4-4.5 2.1-7.6 2.1-5.6 0-10.3-3.8-12-8.9l-7.7 6c3.3 6.7 10.4 11.3 18.2 11.3z"/>` +
	`</svg>`

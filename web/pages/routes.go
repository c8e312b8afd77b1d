package pages

// Routes the login screen links or posts to.
const (
	RouteLogin          = "/login"
	RouteForgotPassword = "/forgot-password"
	RouteRegister       = "/register"
)

// LoginCardID is the element htmx swaps when the form is re-rendered.
const LoginCardID = "login-card"

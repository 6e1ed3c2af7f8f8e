// Package guard decides, when a view is entered, whether it may be shown or
// where the visitor must be sent instead.
package guard

// View names a screen of the client.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewUsers    View = "users"
	ViewContact  View = "contact"
	ViewAbout    View = "about"
	ViewServices View = "services"
)

// Home is where an authenticated visitor lands.
const Home = ViewUsers

// Decision is the outcome of entering a view. When Allow is false the caller
// must render nothing for the requested view and go to Redirect.
type Decision struct {
	Allow    bool
	Redirect View
}

// Protected reports whether v requires a session.
func Protected(v View) bool {
	return v == ViewUsers
}

// Check is evaluated once per entry into v; there is no periodic re-check.
//
//   - a protected view without a session redirects to login;
//   - login or register with a session redirects home;
//   - anything else is allowed.
func Check(v View, authenticated bool) Decision {
	switch {
	case Protected(v) && !authenticated:
		return Decision{Redirect: ViewLogin}
	case (v == ViewLogin || v == ViewRegister) && authenticated:
		return Decision{Redirect: Home}
	default:
		return Decision{Allow: true}
	}
}

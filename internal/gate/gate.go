// Package gate holds the route access decision applied on every navigation.
package gate

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "allow"
	}
}

// RouteFlags are the only route metadata that affects access control.
type RouteFlags struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

type Input struct {
	SessionPresent bool
	// IsAdmin must already be fail-closed: a failed or empty role lookup is false.
	IsAdmin  bool
	AuthPage bool
	Flags    RouteFlags
}

// Decide evaluates the access rules in order, first match wins:
// a signed-in user has no business on login/register pages, protected routes
// need a session, and admin routes additionally need the admin role.
func Decide(in Input) Decision {
	switch {
	case in.AuthPage && in.SessionPresent:
		return RedirectHome
	case in.Flags.RequiresAuth && !in.SessionPresent:
		return RedirectLogin
	case in.Flags.RequiresAdmin && !in.SessionPresent:
		return RedirectLogin
	case in.Flags.RequiresAdmin && !in.IsAdmin:
		return RedirectHome
	default:
		return Allow
	}
}

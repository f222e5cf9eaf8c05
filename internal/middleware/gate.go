package middleware

import (
	"strings"

	"jewelry-storefront/internal/auth"
	"jewelry-storefront/internal/gate"
	"jewelry-storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	LoginPath = "/login"
	HomePath  = "/collection"

	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// SessionGate applies the route access decision on every request. The session
// is fetched fresh from the auth provider each time; a failed lookup denies
// only the current request.
type SessionGate struct {
	provider auth.Provider
	roles    repository.RoleRepository
}

func NewSessionGate(provider auth.Provider, roles repository.RoleRepository) *SessionGate {
	return &SessionGate{
		provider: provider,
		roles:    roles,
	}
}

// Gate guards a route carrying the given capability flags.
func (g *SessionGate) Gate(flags gate.RouteFlags) echo.MiddlewareFunc {
	return g.middleware(flags, false)
}

// AuthPage guards login/register pages, which bounce signed-in users home.
func (g *SessionGate) AuthPage() echo.MiddlewareFunc {
	return g.middleware(gate.RouteFlags{}, true)
}

func (g *SessionGate) middleware(flags gate.RouteFlags, authPage bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var session *auth.Session
			if token := bearerToken(c); token != "" {
				// any verification error is treated as "no session"
				if s, err := g.provider.Session(ctx, token); err == nil {
					session = s
				}
			}

			in := gate.Input{
				SessionPresent: session != nil,
				AuthPage:       authPage,
				Flags:          flags,
			}

			if flags.RequiresAdmin && session != nil {
				// fail-closed: a missing user or failed role lookup means not admin
				if _, err := g.provider.User(ctx, session.UserID); err != nil {
					in.SessionPresent = false
				} else if isAdmin, err := g.roles.IsAdmin(ctx, session.UserID); err == nil {
					in.IsAdmin = isAdmin
				}
			}

			switch gate.Decide(in) {
			case gate.RedirectLogin:
				return c.Redirect(302, LoginPath)
			case gate.RedirectHome:
				return c.Redirect(302, HomePath)
			}

			if session != nil {
				c.Set(ContextUserID, session.UserID)
				c.Set(ContextEmail, session.Email)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	if cookie, err := c.Cookie("session"); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

// UserID returns the authenticated user id set by the gate, if any.
func UserID(c echo.Context) string {
	if v, ok := c.Get(ContextUserID).(string); ok {
		return v
	}
	return ""
}

func Email(c echo.Context) string {
	if v, ok := c.Get(ContextEmail).(string); ok {
		return v
	}
	return ""
}

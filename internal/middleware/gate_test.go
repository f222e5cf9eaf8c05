package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewelry-storefront/internal/auth"
	"jewelry-storefront/internal/gate"
	"jewelry-storefront/internal/middleware"
	"jewelry-storefront/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	session    *auth.Session
	sessionErr error
	userErr    error
}

func (p *stubProvider) Session(context.Context, string) (*auth.Session, error) {
	if p.sessionErr != nil {
		return nil, p.sessionErr
	}
	return p.session, nil
}

func (p *stubProvider) User(_ context.Context, userID string) (*auth.User, error) {
	if p.userErr != nil {
		return nil, p.userErr
	}
	return &auth.User{UserID: userID}, nil
}

func (p *stubProvider) SignOut(context.Context, string) error {
	return nil
}

type stubRoles struct {
	isAdmin bool
	err     error
}

func (r *stubRoles) IsAdmin(context.Context, string) (bool, error) {
	return r.isAdmin, r.err
}

func (r *stubRoles) SetRole(context.Context, string, string) error {
	return nil
}

func (r *stubRoles) FindAll(context.Context) ([]*model.UserRole, error) {
	return nil, nil
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/target", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/target", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGate_AdminRoute(t *testing.T) {
	adminFlags := gate.RouteFlags{RequiresAuth: true, RequiresAdmin: true}
	session := &auth.Session{UserID: "user123", Email: "u@example.com"}

	tests := []struct {
		name         string
		provider     *stubProvider
		roles        *stubRoles
		token        string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "unauthenticated redirects to login",
			provider:     &stubProvider{},
			roles:        &stubRoles{},
			wantStatus:   http.StatusFound,
			wantLocation: middleware.LoginPath,
		},
		{
			name:         "invalid token redirects to login",
			provider:     &stubProvider{sessionErr: assert.AnError},
			roles:        &stubRoles{},
			token:        "bad-token",
			wantStatus:   http.StatusFound,
			wantLocation: middleware.LoginPath,
		},
		{
			name:         "authenticated non-admin redirects home",
			provider:     &stubProvider{session: session},
			roles:        &stubRoles{},
			token:        "good-token",
			wantStatus:   http.StatusFound,
			wantLocation: middleware.HomePath,
		},
		{
			name:         "role lookup failure redirects home",
			provider:     &stubProvider{session: session},
			roles:        &stubRoles{isAdmin: true, err: assert.AnError},
			token:        "good-token",
			wantStatus:   http.StatusFound,
			wantLocation: middleware.HomePath,
		},
		{
			name:         "missing user record redirects to login",
			provider:     &stubProvider{session: session, userErr: assert.AnError},
			roles:        &stubRoles{isAdmin: true},
			token:        "good-token",
			wantStatus:   http.StatusFound,
			wantLocation: middleware.LoginPath,
		},
		{
			name:       "admin proceeds",
			provider:   &stubProvider{session: session},
			roles:      &stubRoles{isAdmin: true},
			token:      "good-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := middleware.NewSessionGate(tt.provider, tt.roles)

			rec := doRequest(t, g.Gate(adminFlags), tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGate_ProtectedRoute(t *testing.T) {
	g := middleware.NewSessionGate(&stubProvider{}, &stubRoles{})

	rec := doRequest(t, g.Gate(gate.RouteFlags{RequiresAuth: true}), "")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get("Location"))
}

func TestGate_AuthPageBouncesSignedInUser(t *testing.T) {
	g := middleware.NewSessionGate(&stubProvider{session: &auth.Session{UserID: "user123"}}, &stubRoles{})

	rec := doRequest(t, g.AuthPage(), "good-token")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, middleware.HomePath, rec.Header().Get("Location"))
}

func TestGate_PublicRoutePassesThrough(t *testing.T) {
	g := middleware.NewSessionGate(&stubProvider{}, &stubRoles{})

	rec := doRequest(t, g.Gate(gate.RouteFlags{}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

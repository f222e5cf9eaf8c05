package handler

import (
	"log"
	"net/http"

	"jewelry-storefront/internal/auth"
	"jewelry-storefront/internal/cart"
	"jewelry-storefront/internal/dto"
	"jewelry-storefront/internal/middleware"
	"jewelry-storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	provider  auth.Provider
	roles     repository.RoleRepository
	snapshots cart.SnapshotStore
}

func NewSessionHandler(provider auth.Provider, roles repository.RoleRepository, snapshots cart.SnapshotStore) *SessionHandler {
	return &SessionHandler{
		provider:  provider,
		roles:     roles,
		snapshots: snapshots,
	}
}

func (h *SessionHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	isAdmin, err := h.roles.IsAdmin(ctx, userID)
	if err != nil {
		// fail-closed, same as the navigation gate
		isAdmin = false
	}

	return c.JSON(http.StatusOK, dto.MeResponse{
		UserID:  userID,
		Email:   middleware.Email(c),
		IsAdmin: isAdmin,
	})
}

// Logout revokes the session at the provider and drops the cart snapshot.
func (h *SessionHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	if err := h.provider.SignOut(ctx, userID); err != nil {
		return err
	}

	if err := h.snapshots.Drop(ctx, userID); err != nil {
		log.Printf("drop cart snapshot on logout: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "signed out"})
}

// LoginPage and RegisterPage exist so the gate has auth-page routes to guard;
// the actual credential exchange happens against the auth provider directly.
func (h *SessionHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "login"})
}

func (h *SessionHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "register"})
}

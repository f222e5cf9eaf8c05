package handler

import (
	"errors"
	"net/http"

	"jewelry-storefront/internal/cart"
	"jewelry-storefront/internal/dto"
	"jewelry-storefront/internal/middleware"
	"jewelry-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CartHandler struct {
	productRepo repository.ProductRepository
	snapshots   cart.SnapshotStore
}

func NewCartHandler(productRepo repository.ProductRepository, snapshots cart.SnapshotStore) *CartHandler {
	return &CartHandler{
		productRepo: productRepo,
		snapshots:   snapshots,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	store, err := h.loadCart(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product, err := h.productRepo.FindByID(ctx, req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	store, err := h.loadCart(c)
	if err != nil {
		return err
	}

	if err := store.Add(ctx, product); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	store, err := h.loadCart(c)
	if err != nil {
		return err
	}

	if err := store.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	store, err := h.loadCart(c)
	if err != nil {
		return err
	}

	if err := store.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Delta); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	store, err := h.loadCart(c)
	if err != nil {
		return err
	}

	if err := store.Clear(c.Request().Context()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(store))
}

func (h *CartHandler) loadCart(c echo.Context) (*cart.Store, error) {
	return loadCartFor(c, h.snapshots)
}

// loadCartFor resolves the active cart. Guests shop under a client cookie;
// once a session is present, anything gathered under that cookie is folded
// into the user's own cart so nothing is lost by logging in at checkout.
func loadCartFor(c echo.Context, snapshots cart.SnapshotStore) (*cart.Store, error) {
	ctx := c.Request().Context()

	uid := middleware.UserID(c)
	if uid == "" {
		store := cart.NewStore(clientID(c), snapshots)
		if err := store.Load(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}

	store := cart.NewStore(uid, snapshots)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	if cookie, err := c.Cookie("cid"); err == nil && cookie.Value != "" {
		guest, err := snapshots.Load(ctx, cookie.Value)
		if err != nil {
			return nil, err
		}
		if len(guest) > 0 {
			if err := store.Merge(ctx, guest); err != nil {
				return nil, err
			}
		}
		if err := snapshots.Drop(ctx, cookie.Value); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// clientID returns the guest cart key, minting the cookie on first touch.
func clientID(c echo.Context) string {
	if cookie, err := c.Cookie("cid"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	cid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     "cid",
		Value:    cid,
		Path:     "/",
		HttpOnly: true,
	})
	return cid
}

func cartResponse(store *cart.Store) dto.CartResponse {
	items := store.Items()
	resp := dto.CartResponse{
		Items:     make([]dto.CartItemResponse, 0, len(items)),
		ItemCount: store.ItemCount(),
		Total:     store.Total(),
	}

	for _, it := range items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			ImageURL: it.ImageURL,
			Quantity: it.Quantity,
		})
	}
	return resp
}

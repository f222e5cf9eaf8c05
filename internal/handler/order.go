package handler

import (
	"errors"
	"net/http"

	"jewelry-storefront/internal/cart"
	"jewelry-storefront/internal/dto"
	"jewelry-storefront/internal/middleware"
	"jewelry-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService service.OrderService
	shipping     service.ShippingStore
	snapshots    cart.SnapshotStore
}

func NewOrderHandler(orderService service.OrderService, shipping service.ShippingStore, snapshots cart.SnapshotStore) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		shipping:     shipping,
		snapshots:    snapshots,
	}
}

func (h *OrderHandler) SaveShippingInfo(c echo.Context) error {
	var req dto.ShippingInfoRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	info := &service.ShippingInfo{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	if err := h.shipping.Save(c.Request().Context(), middleware.UserID(c), info); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, info)
}

func (h *OrderHandler) GetShippingInfo(c echo.Context) error {
	info, err := h.shipping.Load(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	if info == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no shipping info saved")
	}

	return c.JSON(http.StatusOK, info)
}

func (h *OrderHandler) ClearShippingInfo(c echo.Context) error {
	if err := h.shipping.Clear(c.Request().Context(), middleware.UserID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	store, err := loadCartFor(c, h.snapshots)
	if err != nil {
		return err
	}

	order, err := h.orderService.Checkout(ctx, userID, store, req.PaymentDetails)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrShippingRequired), errors.Is(err, service.ErrEmptyCart):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, dto.CheckoutResponse{
		OrderID: order.ID,
		Total:   order.TotalAmount,
		Status:  order.Status,
	})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetByID(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return err
	}

	// orders are only visible to their owner
	if order.UserID != middleware.UserID(c) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.GetUserOrders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

package handler

import (
	"errors"
	"net/http"

	"jewelry-storefront/internal/dto"
	"jewelry-storefront/internal/model"
	"jewelry-storefront/internal/repository"
	"jewelry-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AdminHandler struct {
	productService service.ProductService
	orderService   service.OrderService
	roleRepo       repository.RoleRepository
}

func NewAdminHandler(productService service.ProductService, orderService service.OrderService, roleRepo repository.RoleRepository) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
		roleRepo:       roleRepo,
	}
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req dto.SaveProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		InStock:     req.InStock,
	}

	if err := h.productService.Create(c.Request().Context(), product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req dto.SaveProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	product := &model.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		InStock:     req.InStock,
	}

	err := h.productService.Update(c.Request().Context(), product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	err := h.productService.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.GetAllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	roles, err := h.roleRepo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roles)
}

func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var req dto.SetRoleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if req.Role != model.RoleAdmin && req.Role != model.RoleCustomer {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	if err := h.roleRepo.SetRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"user_id": c.Param("id"), "role": req.Role})
}

package handler

import (
	"errors"
	"net/http"

	"jewelry-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	productService service.ProductService
}

func NewCatalogHandler(productService service.ProductService) *CatalogHandler {
	return &CatalogHandler{
		productService: productService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.Get(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

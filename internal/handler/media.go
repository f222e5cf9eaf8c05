package handler

import (
	"net/http"

	"jewelry-storefront/internal/dto"
	"jewelry-storefront/internal/storage"

	"github.com/labstack/echo/v4"
)

type MediaHandler struct {
	uploader *storage.Uploader
}

func NewMediaHandler(uploader *storage.Uploader) *MediaHandler {
	return &MediaHandler{
		uploader: uploader,
	}
}

func (h *MediaHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	url, err := h.uploader.Upload(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

func (h *MediaHandler) List(c echo.Context) error {
	names, err := h.uploader.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, names)
}

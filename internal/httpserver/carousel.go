package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type CarouselHTTP struct {
	Svc *service.CarouselService
}

func (h *CarouselHTTP) GetCarousel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "carousel.get_carousel")

	images, err := h.Svc.GetCarousel(ctx)
	if err != nil {
		l.Error("get_carousel_error", "status", 500, "reason", "cannot list images", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list images")
	}

	return c.JSON(http.StatusOK, images)
}

func (h *CarouselHTTP) AddImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "carousel.add_image")

	var req transport.CarouselImageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_image_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	img, err := h.Svc.AddImage(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_image_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("add_image_error", "status", 500, "reason", "cannot add image", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add image")
	}

	l.Info("add_image_success")
	return c.JSON(http.StatusCreated, img)
}

func (h *CarouselHTTP) PatchImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "carousel.patch_image")

	id, err := parseID(c)
	if err != nil {
		l.Warn("patch_image_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchCarouselImageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_image_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	img, err := h.Svc.PatchImage(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("patch_image_error", "status", 404, "reason", "image not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("patch_image_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("patch_image_error", "status", 500, "reason", "cannot update image", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update image")
	}

	l.Info("patch_image_success")
	return c.JSON(http.StatusOK, img)
}

func (h *CarouselHTTP) DeleteImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "carousel.delete_image")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_image_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_image_error", "status", 404, "reason", "image not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		}
		l.Error("delete_image_error", "status", 500, "reason", "cannot delete image", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete image")
	}

	l.Info("delete_image_success")
	return c.NoContent(http.StatusNoContent)
}

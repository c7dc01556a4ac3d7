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

type PageHTTP struct {
	Svc *service.PageService
}

func (h *PageHTTP) GetPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.get_page")

	page, err := h.Svc.GetPage(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_page_error", "status", 404, "reason", "page not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "page not found")
		}
		l.Error("get_page_error", "status", 500, "reason", "cannot get page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get page")
	}

	return c.JSON(http.StatusOK, page)
}

func (h *PageHTTP) GetPages(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.get_pages")

	pages, err := h.Svc.GetPages(ctx)
	if err != nil {
		l.Error("get_pages_error", "status", 500, "reason", "cannot list pages", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list pages")
	}

	return c.JSON(http.StatusOK, pages)
}

func (h *PageHTTP) SavePage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.save_page")

	var req transport.PageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("save_page_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	page, err := h.Svc.SavePage(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("save_page_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("save_page_error", "status", 500, "reason", "cannot save page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save page")
	}

	l.Info("save_page_success", "slug", page.Slug)
	return c.JSON(http.StatusOK, page)
}

func (h *PageHTTP) DeletePage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "page.delete_page")

	if err := h.Svc.DeletePage(ctx, c.Param("slug")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_page_error", "status", 404, "reason", "page not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "page not found")
		}
		l.Error("delete_page_error", "status", 500, "reason", "cannot delete page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete page")
	}

	l.Info("delete_page_success")
	return c.NoContent(http.StatusNoContent)
}

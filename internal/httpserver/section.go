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

type SectionHTTP struct {
	Svc *service.SectionService
}

func (h *SectionHTTP) GetSections(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "section.get_sections")

	sections, err := h.Svc.GetSections(ctx)
	if err != nil {
		l.Error("get_sections_error", "status", 500, "reason", "cannot list sections", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list sections")
	}

	return c.JSON(http.StatusOK, sections)
}

func (h *SectionHTTP) CreateSection(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "section.create_section")

	var req transport.CreateSectionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_section_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	section, err := h.Svc.CreateSection(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_section_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("create_section_error", "status", 500, "reason", "cannot create section", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create section")
	}

	l.Info("create_section_success")
	return c.JSON(http.StatusCreated, section)
}

func (h *SectionHTTP) PatchSection(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "section.patch_section")

	id, err := parseID(c)
	if err != nil {
		l.Warn("patch_section_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchSectionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_section_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	section, err := h.Svc.PatchSection(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("patch_section_error", "status", 404, "reason", "section not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "section not found")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("patch_section_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("patch_section_error", "status", 500, "reason", "cannot update section", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update section")
	}

	l.Info("patch_section_success")
	return c.JSON(http.StatusOK, section)
}

func (h *SectionHTTP) DeleteSection(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "section.delete_section")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_section_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteSection(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_section_error", "status", 404, "reason", "section not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "section not found")
		}
		l.Error("delete_section_error", "status", 500, "reason", "cannot delete section", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete section")
	}

	l.Info("delete_section_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *SectionHTTP) SetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "section.set_products")

	id, err := parseID(c)
	if err != nil {
		l.Warn("set_products_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.SectionProductsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_products_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SetProducts(ctx, id, req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("set_products_error", "status", 404, "reason", "section not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "section not found")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("set_products_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("set_products_error", "status", 500, "reason", "cannot set products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot set products")
	}

	l.Info("set_products_success")
	return c.NoContent(http.StatusNoContent)
}

package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/render"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
)

type InvoiceHTTP struct {
	Svc      *service.InvoiceService
	Exporter *render.Exporter
}

func (h *InvoiceHTTP) invoiceHTML(c echo.Context) (string, string, error) {
	id, err := parseID(c)
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	doc, err := h.Svc.BuildDocument(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return "", "", err
	}

	html, err := render.InvoiceHTML(doc)
	if err != nil {
		return "", "", err
	}
	return html, doc.InvoiceNo, nil
}

// GetDocument serves the passive invoice document, for clients that do
// their own rendering.
func (h *InvoiceHTTP) GetDocument(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "invoice.get_document")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_document_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	doc, err := h.Svc.BuildDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_document_error", "status", 404, "reason", "order not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		l.Error("get_document_error", "status", 500, "reason", "cannot build invoice", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build invoice")
	}

	return c.JSON(http.StatusOK, doc)
}

func (h *InvoiceHTTP) GetHTML(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "invoice.get_html")

	html, _, err := h.invoiceHTML(c)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			l.Warn("get_html_error", "status", httpErr.Code, "error", err)
			return err
		}
		l.Error("get_html_error", "status", 500, "reason", "cannot render invoice", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render invoice")
	}

	return c.HTML(http.StatusOK, html)
}

func (h *InvoiceHTTP) GetPDF(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "invoice.get_pdf")

	html, invoiceNo, err := h.invoiceHTML(c)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			l.Warn("get_pdf_error", "status", httpErr.Code, "error", err)
			return err
		}
		l.Error("get_pdf_error", "status", 500, "reason", "cannot render invoice", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render invoice")
	}

	pdf, err := h.Exporter.PDF(ctx, html)
	if err != nil {
		l.Error("get_pdf_error", "status", 500, "reason", "pdf export failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "pdf export failed")
	}

	l.Info("get_pdf_success", "invoice_no", invoiceNo)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.pdf", invoiceNo))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *InvoiceHTTP) GetPNG(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "invoice.get_png")

	html, invoiceNo, err := h.invoiceHTML(c)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			l.Warn("get_png_error", "status", httpErr.Code, "error", err)
			return err
		}
		l.Error("get_png_error", "status", 500, "reason", "cannot render invoice", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot render invoice")
	}

	png, err := h.Exporter.PNG(ctx, html)
	if err != nil {
		l.Error("get_png_error", "status", 500, "reason", "png export failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "png export failed")
	}

	l.Info("get_png_success", "invoice_no", invoiceNo)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.png", invoiceNo))
	return c.Blob(http.StatusOK, "image/png", png)
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/models"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
)

type CompanyHTTP struct {
	Svc *service.CompanyService
}

func (h *CompanyHTTP) GetCompanyInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.get_info")

	info, err := h.Svc.GetCompanyInfo(ctx)
	if err != nil {
		l.Error("get_info_error", "status", 500, "reason", "cannot get company info", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get company info")
	}

	return c.JSON(http.StatusOK, info)
}

func (h *CompanyHTTP) PutCompanyInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.put_info")

	var req models.CompanyInfo
	if err := c.Bind(&req); err != nil {
		l.Warn("put_info_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	info, err := h.Svc.SaveCompanyInfo(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("put_info_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		l.Error("put_info_error", "status", 500, "reason", "cannot save company info", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save company info")
	}

	l.Info("put_info_success")
	return c.JSON(http.StatusOK, info)
}

func (h *CompanyHTTP) GetPaymentMethods(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.get_payment_methods")

	pm, err := h.Svc.GetPaymentMethods(ctx)
	if err != nil {
		l.Error("get_payment_methods_error", "status", 500, "reason", "cannot get payment methods", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get payment methods")
	}

	return c.JSON(http.StatusOK, pm)
}

func (h *CompanyHTTP) PutPaymentMethods(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.put_payment_methods")

	var req models.PaymentMethods
	if err := c.Bind(&req); err != nil {
		l.Warn("put_payment_methods_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pm, err := h.Svc.SavePaymentMethods(ctx, req)
	if err != nil {
		l.Error("put_payment_methods_error", "status", 500, "reason", "cannot save payment methods", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save payment methods")
	}

	l.Info("put_payment_methods_success")
	return c.JSON(http.StatusOK, pm)
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	authmw "github.com/prasannakumar-sl/crackers-shop/internal/middleware/auth"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
	"github.com/prasannakumar-sl/crackers-shop/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "bad credentials")
		}
		l.Error("login_error", "status", 500, "reason", "login failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	authmw.SetAuthCookie(c, res.Token, res.ExpiresAt)
	l.Info("login_success", "username", req.Username)
	return c.JSON(http.StatusOK, map[string]any{"expires_at": res.ExpiresAt})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	authmw.ClearAuthCookie(c)
	return c.NoContent(http.StatusNoContent)
}

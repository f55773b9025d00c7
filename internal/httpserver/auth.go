package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/korzh/servicedesk/internal/logging"
	"github.com/korzh/servicedesk/internal/service"
	"github.com/korzh/servicedesk/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.LoginResponse{
			Success: false,
			Message: "invalid body",
		})
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, transport.LoginResponse{
				Success: false,
				Message: "username and password are required",
			})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, transport.LoginResponse{
				Success: false,
				Message: "invalid username or password",
			})
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.LoginResponse{
			Success: false,
			Message: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		Success:  true,
		Message:  "login successful",
		Token:    res.Token,
		Username: res.Username,
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/korzh/servicedesk/internal/tokens"
)

type BearerAuth struct {
	Tokens *tokens.TokenService
}

func NewBearerAuth(t *tokens.TokenService) *BearerAuth {
	return &BearerAuth{Tokens: t}
}

// RequireAuth rejects requests without a valid, unexpired bearer token and
// stores the token's identity claims in the echo context.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.Tokens.Parse(token)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("username", claims.Name)
		c.Set("subject", claims.Subject)

		return next(c)
	}
}

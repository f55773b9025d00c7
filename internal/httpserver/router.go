package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/korzh/servicedesk/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	RequestHandler *RequestHTTP
	Auth           *middleware.BearerAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/login", d.AuthHandler.Login)

	requests := e.Group("/requests", d.Auth.RequireAuth)
	requests.GET("", d.RequestHandler.GetRequests)
	requests.GET("/filter/status", d.RequestHandler.GetRequestsByStatus)
	requests.GET("/:id", d.RequestHandler.GetRequest)
	requests.POST("", d.RequestHandler.CreateRequest)
	requests.PUT("/:id", d.RequestHandler.UpdateRequest)
	requests.DELETE("/:id", d.RequestHandler.DeleteRequest)
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/korzh/servicedesk/internal/logging"
	"github.com/korzh/servicedesk/internal/mykafka"
	"github.com/korzh/servicedesk/internal/service"
	"github.com/korzh/servicedesk/internal/transport"
)

type RequestHTTP struct {
	Svc      *service.RequestService
	Producer *mykafka.Producer
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(id), nil
}

func actingUser(c echo.Context) string {
	if v, ok := c.Get("username").(string); ok && v != "" {
		return v
	}
	return "Unknown"
}

func (h *RequestHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, fmt.Sprint(event["actor"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *RequestHTTP) GetRequest(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.get_request")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_request_failed", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_request_failed", "status", 404, "reason", "request not found")
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		l.Error("get_request_failed", "status", 500, "reason", "cannot get request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get request")
	}

	return c.JSON(http.StatusOK, record)
}

func (h *RequestHTTP) GetRequests(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.get_requests")

	items, err := h.Svc.ListAll(ctx)
	if err != nil {
		l.Error("get_requests_failed", "status", 500, "reason", "cannot list requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list requests")
	}

	l.Info("get_requests_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *RequestHTTP) GetRequestsByStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.get_requests_by_status")

	status := c.QueryParam("status")
	if status == "" {
		l.Warn("filter_requests_failed", "status", 400, "reason", "status query param is required")
		return echo.NewHTTPError(http.StatusBadRequest, "status query param is required")
	}

	items, err := h.Svc.ListByStatus(ctx, status)
	if err != nil {
		l.Error("filter_requests_failed", "status", 500, "reason", "cannot list requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list requests")
	}

	l.Info("filter_requests_success", "filter", status, "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *RequestHTTP) CreateRequest(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.create_request")

	var req transport.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_request_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	record, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_request_failed", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_request_failed", "status", 500, "reason", "cannot create request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create request")
	}

	h.publish(c, map[string]any{
		"type":      "request_created",
		"requestID": record.ID,
		"title":     record.Title,
		"actor":     actingUser(c),
	})

	l.Info("create_request_success", "request_id", record.ID)
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/requests/%d", record.ID))
	return c.JSON(http.StatusCreated, record)
}

func (h *RequestHTTP) UpdateRequest(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.update_request")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_request_failed", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req transport.UpdateRequestRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_request_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user := actingUser(c)
	record, err := h.Svc.Update(ctx, id, req, user)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_request_failed", "status", 404, "reason", "request not found")
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		l.Error("update_request_failed", "status", 500, "reason", "cannot update request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update request")
	}

	h.publish(c, map[string]any{
		"type":      "request_updated",
		"requestID": record.ID,
		"status":    record.Status,
		"actor":     user,
	})

	l.Info("update_request_success", "request_id", record.ID)
	return c.JSON(http.StatusOK, record)
}

func (h *RequestHTTP) DeleteRequest(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request.delete_request")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_request_failed", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_request_failed", "status", 404, "reason", "request not found")
			return echo.NewHTTPError(http.StatusNotFound, "request not found")
		}
		l.Error("delete_request_failed", "status", 500, "reason", "cannot delete request", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete request")
	}

	h.publish(c, map[string]any{
		"type":      "request_deleted",
		"requestID": id,
		"actor":     actingUser(c),
	})

	l.Info("delete_request_success", "request_id", id)
	return c.NoContent(http.StatusNoContent)
}

package notification

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	service *NotificationService
}

func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/notifications", h.Send)
	g.GET("/notifications/recent", h.Recent)
	g.DELETE("/notifications/:id", h.Remove)
}

type sendRequest struct {
	PatientID string `json:"patient_id"`
	Message   string `json:"message"`
}

func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	n, err := h.service.Send(c.Request().Context(), req.PatientID, req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}
	if items == nil {
		items = []*Notification{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *NotificationHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete notification")
	}
	return c.NoContent(http.StatusNoContent)
}

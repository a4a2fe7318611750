package checkin

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CheckInHandler struct {
	service *CheckInService
}

func NewCheckInHandler(service *CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

func (h *CheckInHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/checkins", h.Record)
	g.GET("/checkins/recent", h.Recent)
}

type recordRequest struct {
	PatientID string `json:"patient_id"`
}

func (h *CheckInHandler) Record(c echo.Context) error {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := h.service.Record(c.Request().Context(), req.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *CheckInHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list check-ins")
	}
	if items == nil {
		items = []*CheckIn{}
	}
	return c.JSON(http.StatusOK, items)
}

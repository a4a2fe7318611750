package wristband

import (
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/medbandalert/clinic/internal/platform/auth"
)

type WristbandHandler struct {
	service *WristbandService
}

func NewWristbandHandler(service *WristbandService) *WristbandHandler {
	return &WristbandHandler{service: service}
}

func (h *WristbandHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/wristbands", h.List)
	g.GET("/wristbands/:id", h.Get)
	g.POST("/wristbands", h.Create, auth.RequireRole("admin"))
	g.PATCH("/wristbands/:id/status", h.SetStatus, auth.RequireRole("admin"))
	g.DELETE("/wristbands/:id", h.Remove, auth.RequireRole("admin"))
}

// wristbandView adds the display-only battery bucket to the API response.
type wristbandView struct {
	*Wristband
	BatteryClass string `json:"battery_class"`
}

func toView(w *Wristband) wristbandView {
	return wristbandView{Wristband: w, BatteryClass: w.BatteryClass()}
}

func (h *WristbandHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list wristbands")
	}
	views := make([]wristbandView, 0, len(items))
	for _, w := range items {
		views = append(views, toView(w))
	}
	return c.JSON(http.StatusOK, views)
}

func (h *WristbandHandler) Get(c echo.Context) error {
	w, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "wristband not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get wristband")
	}
	return c.JSON(http.StatusOK, toView(w))
}

func (h *WristbandHandler) Create(c echo.Context) error {
	var w Wristband
	if err := c.Bind(&w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.service.Create(c.Request().Context(), &w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toView(&w))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *WristbandHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "wristband not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WristbandHandler) Remove(c echo.Context) error {
	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "wristband not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete wristband")
	}
	return c.NoContent(http.StatusNoContent)
}

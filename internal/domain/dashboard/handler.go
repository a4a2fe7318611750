package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	service *DashboardService
}

func NewDashboardHandler(service *DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.Stats)
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Stats(c.Request().Context()))
}

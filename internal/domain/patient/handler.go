package patient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/medbandalert/clinic/pkg/pagination"
)

type PatientHandler struct {
	service *PatientService
}

func NewPatientHandler(service *PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/patients", h.Register)
	g.GET("/patients", h.List)
	g.GET("/patients/:id", h.Get)
	g.DELETE("/patients/:id", h.Remove)
}

type registerRequest struct {
	Name        string `json:"name"`
	ContactNo   string `json:"contact_no"`
	Address     string `json:"address"`
	WristbandID string `json:"wristband_id"`
}

func (h *PatientHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := h.service.Register(c.Request().Context(), req.Name, req.ContactNo, req.Address, req.WristbandID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PatientHandler) List(c echo.Context) error {
	params := pagination.FromContext(c)
	items, total, err := h.service.List(c.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list patients")
	}
	if items == nil {
		items = []*Patient{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, params.Limit, params.Offset))
}

func (h *PatientHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete patient")
	}
	return c.NoContent(http.StatusNoContent)
}

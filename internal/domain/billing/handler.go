package billing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/medbandalert/clinic/pkg/pagination"
)

type BillHandler struct {
	service *BillService
}

func NewBillHandler(service *BillService) *BillHandler {
	return &BillHandler{service: service}
}

func (h *BillHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bills", h.Create)
	g.GET("/bills", h.List)
	g.GET("/bills/:id", h.Get)
	g.POST("/bills/:id/pay", h.Pay)
	g.DELETE("/bills/:id", h.Remove)
}

// Amount arrives as a string because the billing form submits raw text.
type createBillRequest struct {
	PatientID string `json:"patient_id"`
	Amount    string `json:"amount"`
}

func (h *BillHandler) Create(c echo.Context) error {
	var req createBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.service.Create(c.Request().Context(), req.PatientID, amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BillHandler) List(c echo.Context) error {
	params := pagination.FromContext(c)
	items, total, err := h.service.List(c.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list bills")
	}
	if items == nil {
		items = []*Bill{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, params.Limit, params.Offset))
}

func (h *BillHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bill id")
	}

	b, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "bill not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get bill")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BillHandler) Pay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bill id")
	}

	b, err := h.service.MarkPaid(c.Request().Context(), id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "bill not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark bill paid")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BillHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bill id")
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "bill not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete bill")
	}
	return c.NoContent(http.StatusNoContent)
}

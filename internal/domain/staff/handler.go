package staff

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medbandalert/clinic/internal/platform/auth"
)

type StaffHandler struct {
	service *StaffService
	jwtCfg  auth.JWTConfig
}

func NewStaffHandler(service *StaffService, jwtCfg auth.JWTConfig) *StaffHandler {
	return &StaffHandler{service: service, jwtCfg: jwtCfg}
}

// RegisterRoutes mounts the login endpoint. Unlike the rest of the API
// this group is unauthenticated.
func (h *StaffHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *StaffHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	acct, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	}

	token, err := auth.IssueToken(h.jwtCfg, acct.ID.String(), acct.Username, acct.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: acct.Username,
		Role:     acct.Role,
	})
}

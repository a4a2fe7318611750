package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	StaffIDKey  contextKey = "staff_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// Claims carries the staff identity embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// JWTConfig configures token verification and issuance.
type JWTConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// IssueToken signs an HS256 session token for the given staff identity.
func IssueToken(cfg JWTConfig, staffID, username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
		Username: username,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.Secret)
}

// JWTMiddleware validates a Bearer token and stores the staff identity on the
// request context.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.Secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, StaffIDKey, claims.Subject)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// DevAuthMiddleware is a permissive middleware for development that allows
// unauthenticated requests with an admin identity.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, StaffIDKey, "dev-staff")
			ctx = context.WithValue(ctx, UsernameKey, "dev")
			ctx = context.WithValue(ctx, RoleKey, "admin")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func StaffIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(StaffIDKey).(string)
	return id
}

func UsernameFromContext(ctx context.Context) string {
	u, _ := ctx.Value(UsernameKey).(string)
	return u
}

func RoleFromContext(ctx context.Context) string {
	r, _ := ctx.Value(RoleKey).(string)
	return r
}

package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats is the connection pool snapshot exposed on the db health
// endpoint, used when the clinic console reports "cannot reach server".
type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
	Healthy         bool   `json:"healthy"`
}

func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
		Healthy:         stat.TotalConns() > 0,
	}
}

type healthResponse struct {
	Service string     `json:"service"`
	Status  string     `json:"status"`
	Error   string     `json:"error,omitempty"`
	Pool    *PoolStats `json:"pool"`
}

// HealthHandler reports whether the clinic database answers a ping
// within five seconds, along with the current pool snapshot.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := pool.Ping(ctx)
		stats := GetPoolStats(pool)

		if err != nil {
			stats.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, healthResponse{
				Service: "clinic-api",
				Status:  "unhealthy",
				Error:   err.Error(),
				Pool:    stats,
			})
		}

		return c.JSON(http.StatusOK, healthResponse{
			Service: "clinic-api",
			Status:  "healthy",
			Pool:    stats,
		})
	}
}

package checkin

import (
	"context"
	"time"
)

type CheckInRepository interface {
	Create(ctx context.Context, c *CheckIn) error
	Recent(ctx context.Context, limit int) ([]*CheckIn, error)
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
}

package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type checkInRepoPG struct{ pool *pgxpool.Pool }

func NewCheckInRepoPG(pool *pgxpool.Pool) CheckInRepository {
	return &checkInRepoPG{pool: pool}
}

func (r *checkInRepoPG) Create(ctx context.Context, c *CheckIn) error {
	c.ID = uuid.New()
	c.CheckinTime = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO checkin (checkin_id, patient_id, checkin_time)
		VALUES ($1,$2,$3)`,
		c.ID, c.PatientID, c.CheckinTime)
	return err
}

func (r *checkInRepoPG) Recent(ctx context.Context, limit int) ([]*CheckIn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT checkin_id, patient_id, checkin_time
		FROM checkin ORDER BY checkin_time DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.PatientID, &c.CheckinTime); err != nil {
			return nil, err
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

func (r *checkInRepoPG) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM checkin
		WHERE checkin_time >= $1 AND checkin_time <= $2`, start, end).Scan(&total)
	return total, err
}

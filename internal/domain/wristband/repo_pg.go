package wristband

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type wristbandRepoPG struct{ pool *pgxpool.Pool }

func NewWristbandRepoPG(pool *pgxpool.Pool) WristbandRepository {
	return &wristbandRepoPG{pool: pool}
}

const wristbandCols = `wristband_id, rfid, status, battery, patient_id`

func (r *wristbandRepoPG) scanWristband(row pgx.Row) (*Wristband, error) {
	var w Wristband
	err := row.Scan(&w.ID, &w.RFID, &w.Status, &w.Battery, &w.PatientID)
	return &w, err
}

func (r *wristbandRepoPG) Create(ctx context.Context, w *Wristband) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wristband (wristband_id, rfid, status, battery, patient_id)
		VALUES ($1,$2,$3,$4,$5)`,
		w.ID, w.RFID, w.Status, w.Battery, w.PatientID)
	return err
}

func (r *wristbandRepoPG) GetByID(ctx context.Context, id string) (*Wristband, error) {
	return r.scanWristband(r.pool.QueryRow(ctx, `SELECT `+wristbandCols+` FROM wristband WHERE wristband_id = $1`, id))
}

func (r *wristbandRepoPG) List(ctx context.Context) ([]*Wristband, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+wristbandCols+` FROM wristband ORDER BY wristband_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Wristband
	for rows.Next() {
		w, err := r.scanWristband(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *wristbandRepoPG) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE wristband SET status = $2 WHERE wristband_id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *wristbandRepoPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wristband WHERE wristband_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *wristbandRepoPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wristband WHERE status = $1`, status).Scan(&total)
	return total, err
}

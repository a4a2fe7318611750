package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type billRepoPG struct{ pool *pgxpool.Pool }

func NewBillRepoPG(pool *pgxpool.Pool) BillRepository {
	return &billRepoPG{pool: pool}
}

const billCols = `billing_id, patient_id, amount, status, date_issued`

func (r *billRepoPG) scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.Amount, &b.Status, &b.DateIssued)
	return &b, err
}

func (r *billRepoPG) Create(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	b.DateIssued = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO billing (billing_id, patient_id, amount, status, date_issued)
		VALUES ($1,$2,$3,$4,$5)`,
		b.ID, b.PatientID, b.Amount, b.Status, b.DateIssued)
	return err
}

func (r *billRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return r.scanBill(r.pool.QueryRow(ctx, `SELECT `+billCols+` FROM billing WHERE billing_id = $1`, id))
}

func (r *billRepoPG) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM billing`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+billCols+` FROM billing ORDER BY date_issued DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Bill
	for rows.Next() {
		b, err := r.scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *billRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE billing SET status = $2 WHERE billing_id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *billRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM billing WHERE billing_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type staffRepoPG struct{ pool *pgxpool.Pool }

func NewStaffRepoPG(pool *pgxpool.Pool) StaffRepository {
	return &staffRepoPG{pool: pool}
}

func (r *staffRepoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (staff_id, username, password_hash, role, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.Username, s.PasswordHash, s.Role, s.CreatedAt)
	return err
}

func (r *staffRepoPG) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	var s Staff
	err := r.pool.QueryRow(ctx, `
		SELECT staff_id, username, password_hash, role, created_at
		FROM staff WHERE username = $1`, username).
		Scan(&s.ID, &s.Username, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

package billing

import (
	"context"

	"github.com/google/uuid"
)

type BillRepository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	List(ctx context.Context, limit, offset int) ([]*Bill, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

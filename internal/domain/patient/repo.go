package patient

import (
	"context"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

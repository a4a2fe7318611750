package wristband

import "context"

type WristbandRepository interface {
	Create(ctx context.Context, w *Wristband) error
	GetByID(ctx context.Context, id string) (*Wristband, error)
	List(ctx context.Context) ([]*Wristband, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

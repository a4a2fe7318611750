package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByUsername(ctx context.Context, username string) (*Staff, error)
}

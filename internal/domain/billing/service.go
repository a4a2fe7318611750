package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type BillService struct {
	repo BillRepository
}

func NewBillService(repo BillRepository) *BillService {
	return &BillService{repo: repo}
}

// Create issues an unpaid bill. The patient reference is not resolved
// against the registry.
func (s *BillService) Create(ctx context.Context, patientID string, amount float64) (*Bill, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	b := &Bill{
		PatientID: patientID,
		Amount:    amount,
		Status:    StatusUnpaid,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	return b, nil
}

func (s *BillService) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BillService) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// MarkPaid settles a bill. Settling an already-paid bill succeeds
// without touching the record.
func (s *BillService) MarkPaid(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusPaid {
		return b, nil
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusPaid); err != nil {
		return nil, fmt.Errorf("failed to mark bill paid: %w", err)
	}
	b.Status = StatusPaid
	return b, nil
}

func (s *BillService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

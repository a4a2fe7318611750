package checkin

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultRecentLimit matches the dashboard's recent check-ins panel.
const DefaultRecentLimit = 5

type CheckInService struct {
	repo CheckInRepository
}

func NewCheckInService(repo CheckInRepository) *CheckInService {
	return &CheckInService{repo: repo}
}

// Record appends a check-in for the given patient reference. The
// reference is not resolved against the registry; a tap from a band
// whose patient was deleted still lands in the ledger.
func (s *CheckInService) Record(ctx context.Context, patientID string) (*CheckIn, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	c := &CheckIn{PatientID: patientID}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	return c, nil
}

func (s *CheckInService) Recent(ctx context.Context, limit int) ([]*CheckIn, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

// CountToday counts check-ins within the current local calendar day.
func (s *CheckInService) CountToday(ctx context.Context) (int, error) {
	start, end := DayBounds(time.Now())
	return s.repo.CountBetween(ctx, start, end)
}

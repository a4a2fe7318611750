package wristband

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type WristbandService struct {
	repo WristbandRepository
}

func NewWristbandService(repo WristbandRepository) *WristbandService {
	return &WristbandService{repo: repo}
}

func (s *WristbandService) Create(ctx context.Context, w *Wristband) error {
	w.ID = strings.TrimSpace(w.ID)
	w.RFID = strings.TrimSpace(w.RFID)
	if w.ID == "" {
		return fmt.Errorf("wristband_id is required")
	}
	if w.RFID == "" {
		return fmt.Errorf("rfid is required")
	}
	if w.Status == "" {
		w.Status = StatusInactive
	}
	if !ValidStatus(w.Status) {
		return fmt.Errorf("invalid status: %s", w.Status)
	}
	if w.Battery < 0 || w.Battery > 100 {
		return fmt.Errorf("battery must be between 0 and 100")
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return fmt.Errorf("failed to create wristband: %w", err)
	}
	return nil
}

func (s *WristbandService) Get(ctx context.Context, id string) (*Wristband, error) {
	return s.repo.GetByID(ctx, id)
}

// Exists reports whether a wristband with the given id is registered.
// Used by patient registration to reject dangling wristband references.
func (s *WristbandService) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all wristbands, optionally filtered by a search term
// matched against the id, RFID, status and assigned patient.
func (s *WristbandService) List(ctx context.Context, search string) ([]*Wristband, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, search), nil
}

func (s *WristbandService) SetStatus(ctx context.Context, id, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *WristbandService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *WristbandService) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusActive)
}

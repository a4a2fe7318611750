package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultRecentLimit matches the notification log panel.
const DefaultRecentLimit = 10

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Send logs an outgoing SMS. The message is trimmed before storage.
func (s *NotificationService) Send(ctx context.Context, patientID, message string) (*Notification, error) {
	patientID = strings.TrimSpace(patientID)
	message = strings.TrimSpace(message)
	if patientID == "" {
		return nil, fmt.Errorf("patient_id is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	n := &Notification{PatientID: patientID, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to log notification: %w", err)
	}
	return n, nil
}

func (s *NotificationService) Recent(ctx context.Context, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *NotificationService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

package notification

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockNotificationRepo struct {
	entries []*Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *Notification) error {
	n.ID = uuid.New()
	if n.DateSent.IsZero() {
		n.DateSent = time.Now()
	}
	m.entries = append(m.entries, n)
	return nil
}

func (m *mockNotificationRepo) Recent(ctx context.Context, limit int) ([]*Notification, error) {
	sorted := make([]*Notification, len(m.entries))
	copy(sorted, m.entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DateSent.After(sorted[j].DateSent)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, n := range m.entries {
		if n.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestSend(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	n, err := svc.Send(context.Background(), "patient-1", "  Your next shot is due tomorrow.  ")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if n.Message != "Your next shot is due tomorrow." {
		t.Errorf("message = %q, want trimmed text", n.Message)
	}
	if n.DateSent.IsZero() {
		t.Error("expected date_sent to be set")
	}
}

func TestSend_Validation(t *testing.T) {
	svc := NewNotificationService(&mockNotificationRepo{})

	if _, err := svc.Send(context.Background(), "", "hello"); err == nil {
		t.Error("expected error for empty patient id")
	}
	if _, err := svc.Send(context.Background(), "patient-1", ""); err == nil {
		t.Error("expected error for empty message")
	}
	if _, err := svc.Send(context.Background(), "patient-1", "   "); err == nil {
		t.Error("expected error for whitespace-only message")
	}
	if _, err := svc.Send(context.Background(), "patient-1", "x"); err != nil {
		t.Errorf("single-character message should be accepted, got %v", err)
	}
}

func TestRecent_DefaultLimit(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	base := time.Now()
	for i := 0; i < 15; i++ {
		repo.entries = append(repo.entries, &Notification{
			ID:        uuid.New(),
			PatientID: "p",
			Message:   "m",
			DateSent:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	items, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(items) != DefaultRecentLimit {
		t.Fatalf("got %d items, want %d", len(items), DefaultRecentLimit)
	}
	for i := 1; i < len(items); i++ {
		if items[i].DateSent.After(items[i-1].DateSent) {
			t.Fatal("expected newest-first ordering")
		}
	}
}

func TestRemoveNotification(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	n, _ := svc.Send(context.Background(), "patient-1", "hello")
	if err := svc.Remove(context.Background(), n.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := svc.Remove(context.Background(), n.ID); err != pgx.ErrNoRows {
		t.Errorf("expected ErrNoRows for second delete, got %v", err)
	}
}

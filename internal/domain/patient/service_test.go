package patient

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockPatientRepo) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.DateRegistered = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockPatientRepo) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var items []*Patient
	for _, p := range m.patients {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].DateRegistered.Before(items[j].DateRegistered)
	})
	total := len(items)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], total, nil
}

func (m *mockPatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) Count(ctx context.Context) (int, error) {
	return len(m.patients), nil
}

type mockWristbandDirectory map[string]bool

func (m mockWristbandDirectory) Exists(ctx context.Context, id string) (bool, error) {
	return m[id], nil
}

func newTestService(repo *mockPatientRepo, wristbandIDs ...string) *PatientService {
	dir := mockWristbandDirectory{}
	for _, id := range wristbandIDs {
		dir[id] = true
	}
	return NewPatientService(repo, dir)
}

func TestRegister(t *testing.T) {
	svc := newTestService(newMockPatientRepo(), "WB001")

	p, err := svc.Register(context.Background(), "Juan Dela Cruz", "09171234567", "Quezon City", "WB001")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected assigned patient id")
	}
	if p.WristbandID == nil || *p.WristbandID != "WB001" {
		t.Errorf("wristband = %v, want WB001", p.WristbandID)
	}
	if p.DateRegistered.IsZero() {
		t.Error("expected date_registered to be set")
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	svc := newTestService(newMockPatientRepo())

	cases := []struct {
		name, contact, address string
	}{
		{"", "09171234567", "Quezon City"},
		{"Juan", "", "Quezon City"},
		{"Juan", "09171234567", ""},
		{"   ", "09171234567", "Quezon City"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.name, tc.contact, tc.address, ""); err == nil {
			t.Errorf("expected error for %q/%q/%q", tc.name, tc.contact, tc.address)
		}
	}
}

func TestRegister_UnknownWristbandRejected(t *testing.T) {
	repo := newMockPatientRepo()
	svc := newTestService(repo, "WB001")

	if _, err := svc.Register(context.Background(), "Juan", "0917", "Manila", "WB-DOES-NOT-EXIST"); err == nil {
		t.Fatal("expected error for unregistered wristband id")
	}
	if len(repo.patients) != 0 {
		t.Error("patient persisted despite dangling wristband reference")
	}
}

func TestRegister_WristbandPlaceholder(t *testing.T) {
	svc := newTestService(newMockPatientRepo())

	p, err := svc.Register(context.Background(), "Maria Santos", "09181234567", "Makati", NoWristband)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if p.WristbandID != nil {
		t.Errorf("wristband = %q, want nil for placeholder selection", *p.WristbandID)
	}

	p, err = svc.Register(context.Background(), "Pedro Reyes", "09191234567", "Pasig", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if p.WristbandID != nil {
		t.Errorf("wristband = %q, want nil for empty selection", *p.WristbandID)
	}
}

func TestList_OrderedByRegistration(t *testing.T) {
	repo := newMockPatientRepo()
	svc := newTestService(repo)

	first, _ := svc.Register(context.Background(), "First", "0917", "A", "")
	repo.patients[first.ID].DateRegistered = time.Now().Add(-time.Hour)
	second, _ := svc.Register(context.Background(), "Second", "0918", "B", "")
	_ = second

	items, total, err := svc.List(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("got %d items total %d, want 2/2", len(items), total)
	}
	if items[0].Name != "First" {
		t.Errorf("first item = %q, want oldest registration first", items[0].Name)
	}
}

func TestRemovePatient(t *testing.T) {
	svc := newTestService(newMockPatientRepo())

	p, _ := svc.Register(context.Background(), "Juan", "0917", "QC", "")
	if err := svc.Remove(context.Background(), p.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); err != pgx.ErrNoRows {
		t.Errorf("expected ErrNoRows after delete, got %v", err)
	}
	if err := svc.Remove(context.Background(), p.ID); err != pgx.ErrNoRows {
		t.Errorf("expected ErrNoRows for second delete, got %v", err)
	}
}

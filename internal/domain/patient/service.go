package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// WristbandDirectory resolves wristband identifiers during registration.
// Implemented by the wristband service.
type WristbandDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type PatientService struct {
	repo       PatientRepository
	wristbands WristbandDirectory
}

func NewPatientService(repo PatientRepository, wristbands WristbandDirectory) *PatientService {
	return &PatientService{repo: repo, wristbands: wristbands}
}

// Register creates a patient record. The wristband selection is stored
// only when the caller picked a concrete wristband id; the placeholder
// value from the registration form is treated as "none". A concrete id
// must name a registered wristband.
func (s *PatientService) Register(ctx context.Context, name, contactNo, address, wristbandSelection string) (*Patient, error) {
	name = strings.TrimSpace(name)
	contactNo = strings.TrimSpace(contactNo)
	address = strings.TrimSpace(address)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if contactNo == "" {
		return nil, fmt.Errorf("contact_no is required")
	}
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}

	p := &Patient{
		Name:      name,
		ContactNo: contactNo,
		Address:   address,
	}
	if sel := strings.TrimSpace(wristbandSelection); sel != "" && sel != NoWristband {
		ok, err := s.wristbands.Exists(ctx, sel)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve wristband: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("unknown wristband: %s", sel)
		}
		p.WristbandID = &sel
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Remove deletes the patient record only. Check-ins, bills and
// notifications that reference the patient are kept as-is.
func (s *PatientService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PatientService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

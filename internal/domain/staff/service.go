package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and
// wrong passwords so callers cannot probe for accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

type StaffService struct {
	repo StaffRepository
}

func NewStaffService(repo StaffRepository) *StaffService {
	return &StaffService{repo: repo}
}

// Login verifies the credentials and returns the matching account.
func (s *StaffService) Login(ctx context.Context, username, password string) (*Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	acct, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// CreateAccount hashes the password and stores a new staff account.
// Used by the seed command.
func (s *StaffService) CreateAccount(ctx context.Context, username, password, role string) (*Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if role != RoleAdmin && role != RoleStaff {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &Staff{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}
	return acct, nil
}

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register records a new user. Role must be patient or doctor; email is
// lowercased before storage.
func (s *Service) Register(ctx context.Context, u *User) error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	u.Email = strings.ToLower(u.Email)
	if u.Role != RolePatient && u.Role != RoleDoctor {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	return s.repo.Create(ctx, u)
}

// ListDoctors pages through registered doctors in registration order.
func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.repo.ListByRole(ctx, RoleDoctor, limit, offset)
}

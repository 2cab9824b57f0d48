package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

// UserService implements business logic for Users.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Create validates and persists a new user. Email addresses are stored
// lower-cased so uniqueness is case-insensitive.
func (s *UserService) Create(ctx context.Context, user domain.User) (domain.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Name = strings.TrimSpace(user.Name)

	if user.Email == "" {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w: email is required", domain.ErrValidation)
	}
	if !strings.Contains(user.Email, "@") {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w: email is not valid", domain.ErrValidation)
	}
	if user.Name == "" {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w: name is required", domain.ErrValidation)
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	return users, nil
}

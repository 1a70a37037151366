package service

import (
	"context"

	"personacast/internal/domain/user"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

type UserService struct {
	CRUD[user.User, string, user.CreateUserInput, user.UpdateUserInput]
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		CRUD: NewCRUD[user.User, string, user.CreateUserInput, user.UpdateUserInput](repo),
		repo: repo,
	}
}

// ToggleActive flips the active flag after an explicit existence check.
func (s *UserService) ToggleActive(ctx context.Context, id string) (*user.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := !existing.IsActive
	return s.repo.Update(ctx, id, user.UpdateUserInput{IsActive: &next})
}

// UpdateRole is a narrow partial update restricted to the role field.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*user.User, error) {
	return s.repo.Update(ctx, id, user.UpdateUserInput{Role: &role})
}

// FindByEmail scans the full user set and filters in memory. The user
// table is expected to stay small enough that an indexed lookup is not
// worth a dedicated query.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

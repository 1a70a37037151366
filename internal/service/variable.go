package service

import (
	"context"
	"errors"

	"personacast/internal/domain/variable"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

type VariableService struct {
	CRUD[variable.Variable, int64, variable.CreateVariableInput, variable.UpdateVariableInput]
	repo repository.VariableRepository
}

func NewVariableService(repo repository.VariableRepository) *VariableService {
	return &VariableService{
		CRUD: NewCRUD[variable.Variable, int64, variable.CreateVariableInput, variable.UpdateVariableInput](repo),
		repo: repo,
	}
}

func (s *VariableService) GetByName(ctx context.Context, name string) (*variable.Variable, error) {
	return s.repo.GetByName(ctx, name)
}

// ValueOrDefault returns the stored value, or fallback when the
// variable does not exist. Storage failures still propagate.
func (s *VariableService) ValueOrDefault(ctx context.Context, name, fallback string) (string, error) {
	v, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return v.Value, nil
}

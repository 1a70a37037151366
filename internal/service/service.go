// Package service layers business rules on top of the repository
// adapters. Every service embeds the generic CRUD base and adds its
// entity-specific rules on top; route handlers only ever talk to
// services, never to repositories.
package service

import (
	"context"

	"personacast/internal/repository"
)

// CRUD is the generic service base: a straight delegation seam over one
// repository, mirrored by every entity service. Entity services embed
// it and override or extend where a business rule applies.
type CRUD[T any, ID comparable, C any, U any] struct {
	repo repository.CRUD[T, ID, C, U]
}

func NewCRUD[T any, ID comparable, C any, U any](repo repository.CRUD[T, ID, C, U]) CRUD[T, ID, C, U] {
	return CRUD[T, ID, C, U]{repo: repo}
}

func (s *CRUD[T, ID, C, U]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

func (s *CRUD[T, ID, C, U]) GetByID(ctx context.Context, id ID) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CRUD[T, ID, C, U]) Create(ctx context.Context, input C) (*T, error) {
	return s.repo.Create(ctx, input)
}

func (s *CRUD[T, ID, C, U]) Update(ctx context.Context, id ID, input U) (*T, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *CRUD[T, ID, C, U]) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	"personacast/internal/domain/account"
	"personacast/internal/repository"
)

// AccountService is plain CRUD over provider-linked accounts. Provider
// integration itself happens outside this codebase; this service only
// stores what the provider callback hands over.
type AccountService struct {
	CRUD[account.Account, string, account.CreateAccountInput, account.UpdateAccountInput]
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) *AccountService {
	return &AccountService{
		CRUD: NewCRUD[account.Account, string, account.CreateAccountInput, account.UpdateAccountInput](repo),
		repo: repo,
	}
}

func (s *AccountService) ListByUserID(ctx context.Context, userID string) ([]account.Account, error) {
	return s.repo.ListByUserID(ctx, userID)
}

package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/account"
)

const accountColumns = "id, user_id, provider, provider_account_id, access_token, refresh_token, token_type, scope, expires_at, created_at, updated_at"

type AccountRepository struct {
	table[account.Account, string]
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{table: table[account.Account, string]{
		q:        db.Pool,
		name:     "accounts",
		columns:  accountColumns,
		orderBy:  "created_at, id",
		notFound: "account not found",
	}}
}

func (r *AccountRepository) WithTx(tx pgx.Tx) *AccountRepository {
	return &AccountRepository{table: r.table.withQuerier(tx)}
}

func (r *AccountRepository) Create(ctx context.Context, input account.CreateAccountInput) (*account.Account, error) {
	return r.insertOne(ctx,
		[]string{"id", "user_id", "provider", "provider_account_id", "access_token", "refresh_token", "token_type", "scope", "expires_at"},
		uuid.NewString(), input.UserID, input.Provider, input.ProviderAccountID,
		input.AccessToken, input.RefreshToken, input.TokenType, input.Scope, input.ExpiresAt,
	)
}

func (r *AccountRepository) Update(ctx context.Context, id string, input account.UpdateAccountInput) (*account.Account, error) {
	fields := map[string]any{}
	if input.AccessToken != nil {
		fields["access_token"] = *input.AccessToken
	}
	if input.RefreshToken != nil {
		fields["refresh_token"] = *input.RefreshToken
	}
	if input.TokenType != nil {
		fields["token_type"] = *input.TokenType
	}
	if input.Scope != nil {
		fields["scope"] = *input.Scope
	}
	if input.ExpiresAt != nil {
		fields["expires_at"] = *input.ExpiresAt
	}
	return r.updateFields(ctx, id, fields)
}

func (r *AccountRepository) ListByUserID(ctx context.Context, userID string) ([]account.Account, error) {
	return r.manyWhere(ctx, "user_id = $1", userID)
}

package account

import "time"

// Account links a user to an external OAuth provider identity. Token
// values come from the provider and are stored verbatim.
type Account struct {
	ID                string     `db:"id"`
	UserID            string     `db:"user_id"`
	Provider          string     `db:"provider"`
	ProviderAccountID string     `db:"provider_account_id"`
	AccessToken       *string    `db:"access_token"`
	RefreshToken      *string    `db:"refresh_token"`
	TokenType         *string    `db:"token_type"`
	Scope             *string    `db:"scope"`
	ExpiresAt         *time.Time `db:"expires_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

type CreateAccountInput struct {
	UserID            string
	Provider          string
	ProviderAccountID string
	AccessToken       *string
	RefreshToken      *string
	TokenType         *string
	Scope             *string
	ExpiresAt         *time.Time
}

type UpdateAccountInput struct {
	AccessToken  *string
	RefreshToken *string
	TokenType    *string
	Scope        *string
	ExpiresAt    *time.Time
}

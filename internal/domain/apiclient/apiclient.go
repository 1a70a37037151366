package apiclient

import "time"

// APIClient is a machine caller of the public API. Its token is
// generated server-side on create and never accepted from callers.
type APIClient struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Token       string    `db:"token"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type CreateAPIClientInput struct {
	Name        string
	Description string
	// Token is injected by the service layer, never bound from a request.
	Token string
}

type UpdateAPIClientInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

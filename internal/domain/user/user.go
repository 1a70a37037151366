package user

import "time"

// Roles recognized across the application.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	Image     *string   `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CreateUserInput struct {
	Name  string
	Email string
	Role  string
	Image *string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	IsActive *bool
	Image    *string
}

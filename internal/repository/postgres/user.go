package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/user"
)

const userColumns = "id, name, email, role, is_active, image, created_at, updated_at"

type UserRepository struct {
	table[user.User, string]
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{table: table[user.User, string]{
		q:        db.Pool,
		name:     "users",
		columns:  userColumns,
		orderBy:  "created_at, id",
		notFound: "user not found",
	}}
}

func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{table: r.table.withQuerier(tx)}
}

func (r *UserRepository) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	return r.insertOne(ctx,
		[]string{"id", "name", "email", "role", "image"},
		uuid.NewString(), input.Name, input.Email, input.Role, input.Image,
	)
}

func (r *UserRepository) Update(ctx context.Context, id string, input user.UpdateUserInput) (*user.User, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	return r.updateFields(ctx, id, fields)
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/apiclient"
)

const apiClientColumns = "id, name, description, token, is_active, created_at, updated_at"

type APIClientRepository struct {
	table[apiclient.APIClient, int64]
}

func NewAPIClientRepository(db *DB) *APIClientRepository {
	return &APIClientRepository{table: table[apiclient.APIClient, int64]{
		q:        db.Pool,
		name:     "api_clients",
		columns:  apiClientColumns,
		orderBy:  "created_at, id",
		notFound: "api client not found",
	}}
}

func (r *APIClientRepository) WithTx(tx pgx.Tx) *APIClientRepository {
	return &APIClientRepository{table: r.table.withQuerier(tx)}
}

func (r *APIClientRepository) Create(ctx context.Context, input apiclient.CreateAPIClientInput) (*apiclient.APIClient, error) {
	return r.insertOne(ctx,
		[]string{"name", "description", "token"},
		input.Name, input.Description, input.Token,
	)
}

func (r *APIClientRepository) Update(ctx context.Context, id int64, input apiclient.UpdateAPIClientInput) (*apiclient.APIClient, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	return r.updateFields(ctx, id, fields)
}

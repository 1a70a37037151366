package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/variable"
)

const variableColumns = "id, name, value, created_at, updated_at"

type VariableRepository struct {
	table[variable.Variable, int64]
}

func NewVariableRepository(db *DB) *VariableRepository {
	return &VariableRepository{table: table[variable.Variable, int64]{
		q:        db.Pool,
		name:     "variables",
		columns:  variableColumns,
		orderBy:  "name",
		notFound: "variable not found",
	}}
}

func (r *VariableRepository) WithTx(tx pgx.Tx) *VariableRepository {
	return &VariableRepository{table: r.table.withQuerier(tx)}
}

func (r *VariableRepository) Create(ctx context.Context, input variable.CreateVariableInput) (*variable.Variable, error) {
	return r.insertOne(ctx, []string{"name", "value"}, input.Name, input.Value)
}

func (r *VariableRepository) Update(ctx context.Context, id int64, input variable.UpdateVariableInput) (*variable.Variable, error) {
	fields := map[string]any{}
	if input.Value != nil {
		fields["value"] = *input.Value
	}
	return r.updateFields(ctx, id, fields)
}

func (r *VariableRepository) GetByName(ctx context.Context, name string) (*variable.Variable, error) {
	return r.oneWhere(ctx, "name = $1", name)
}

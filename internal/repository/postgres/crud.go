package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "personacast/pkg/errors"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every table
// operation can run against the pool or inside a caller-owned
// transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecordID covers the two identifier kinds used by the data model:
// numeric (bigserial) and opaque string (uuid text).
type RecordID interface {
	~int64 | ~string
}

// table is the generic CRUD base shared by every entity adapter. It
// holds the table name, select column list and the querier to run
// against; rows are scanned into T by column name via db struct tags.
type table[T any, ID RecordID] struct {
	q        Querier
	name     string
	columns  string
	orderBy  string
	notFound string
}

// withQuerier returns a copy bound to q, used to thread a transaction
// handle through consecutive adapter calls.
func (t table[T, ID]) withQuerier(q Querier) table[T, ID] {
	t.q = q
	return t
}

// GetAll returns the full record set in storage order. No pagination.
func (t *table[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", t.columns, t.name, t.orderBy)

	rows, err := t.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}
	return records, nil
}

// GetByID returns the record or a NotFound error; absence never
// surfaces as a raw driver error.
func (t *table[T, ID]) GetByID(ctx context.Context, id ID) (*T, error) {
	return t.oneWhere(ctx, "id = $1", id)
}

// Delete removes the record, reporting NotFound when nothing matched.
func (t *table[T, ID]) Delete(ctx context.Context, id ID) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name)

	tag, err := t.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(t.notFound)
	}
	return nil
}

// insertOne builds an INSERT for the given columns and returns the
// stored row, including generated identifier and timestamps.
func (t *table[T, ID]) insertOne(ctx context.Context, cols []string, args ...any) (*T, error) {
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.columns,
	)
	return t.one(ctx, query, args...)
}

// updateFields merges the given columns onto the existing row and
// re-stamps updated_at, returning the updated record. NotFound when the
// id does not exist.
func (t *table[T, ID]) updateFields(ctx context.Context, id ID, fields map[string]any) (*T, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		set = append(set, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.name, strings.Join(set, ", "), len(args), t.columns,
	)
	return t.one(ctx, query, args...)
}

func (t *table[T, ID]) oneWhere(ctx context.Context, where string, args ...any) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", t.columns, t.name, where)
	return t.one(ctx, query, args...)
}

// latestWhere returns the newest matching record, with the identifier as
// tie breaker so repeated lookups over duplicate matches stay stable.
func (t *table[T, ID]) latestWhere(ctx context.Context, where string, args ...any) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id DESC LIMIT 1",
		t.columns, t.name, where,
	)
	return t.one(ctx, query, args...)
}

func (t *table[T, ID]) manyWhere(ctx context.Context, where string, args ...any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s", t.columns, t.name, where, t.orderBy)

	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}
	return records, nil
}

func (t *table[T, ID]) one(ctx context.Context, query string, args ...any) (*T, error) {
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(t.notFound)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(fmt.Sprintf("%s already exists", strings.TrimSuffix(t.name, "s")))
		}
		return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}
	return record, nil
}

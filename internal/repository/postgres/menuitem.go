package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/menuitem"
)

const menuItemColumns = "id, label, href, position, parent_id, required_roles, is_system, created_at, updated_at"

type MenuItemRepository struct {
	table[menuitem.MenuItem, int64]
	db *DB
}

func NewMenuItemRepository(db *DB) *MenuItemRepository {
	return &MenuItemRepository{
		table: table[menuitem.MenuItem, int64]{
			q:        db.Pool,
			name:     "menu_items",
			columns:  menuItemColumns,
			orderBy:  "position, id",
			notFound: "menu item not found",
		},
		db: db,
	}
}

func (r *MenuItemRepository) WithTx(tx pgx.Tx) *MenuItemRepository {
	return &MenuItemRepository{table: r.table.withQuerier(tx), db: r.db}
}

func (r *MenuItemRepository) Create(ctx context.Context, input menuitem.CreateMenuItemInput) (*menuitem.MenuItem, error) {
	roles := input.RequiredRoles
	if roles == nil {
		roles = []string{}
	}
	return r.insertOne(ctx,
		[]string{"label", "href", "position", "parent_id", "required_roles", "is_system"},
		input.Label, input.Href, input.Position, input.ParentID, roles, input.IsSystem,
	)
}

func (r *MenuItemRepository) Update(ctx context.Context, id int64, input menuitem.UpdateMenuItemInput) (*menuitem.MenuItem, error) {
	fields := map[string]any{}
	if input.Label != nil {
		fields["label"] = *input.Label
	}
	if input.Href != nil {
		fields["href"] = *input.Href
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if input.ParentID != nil {
		fields["parent_id"] = *input.ParentID
	}
	if input.RequiredRoles != nil {
		fields["required_roles"] = *input.RequiredRoles
	}
	return r.updateFields(ctx, id, fields)
}

// Reorder applies all moves in one transaction so a failed move leaves
// the tree untouched.
func (r *MenuItemRepository) Reorder(ctx context.Context, moves []menuitem.Move) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		scoped := r.WithTx(tx)
		for _, move := range moves {
			fields := map[string]any{
				"position":  move.Position,
				"parent_id": move.ParentID,
			}
			if _, err := scoped.updateFields(ctx, move.ID, fields); err != nil {
				return err
			}
		}
		return nil
	})
}

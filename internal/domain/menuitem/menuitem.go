package menuitem

import "time"

// MenuItem is one node of the navigation tree. ParentID of nil means a
// top-level entry. System items cannot be deleted through the API.
type MenuItem struct {
	ID            int64     `db:"id"`
	Label         string    `db:"label"`
	Href          string    `db:"href"`
	Position      int       `db:"position"`
	ParentID      *int64    `db:"parent_id"`
	RequiredRoles []string  `db:"required_roles"`
	IsSystem      bool      `db:"is_system"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type CreateMenuItemInput struct {
	Label         string
	Href          string
	Position      int
	ParentID      *int64
	RequiredRoles []string
	IsSystem      bool
}

type UpdateMenuItemInput struct {
	Label         *string
	Href          *string
	Position      *int
	ParentID      *int64
	RequiredRoles *[]string
}

// Move is one entry of a reorder batch.
type Move struct {
	ID       int64
	Position int
	ParentID *int64
}

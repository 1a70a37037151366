package variable

import "time"

// Well-known variable names.
const (
	NameShowDebugControls = "SHOW_DEBUG_CONTROLS"
	NameFaviconFileID     = "FAVICON_FILE_ID"
)

// Variable is one row of the key/value configuration store.
type Variable struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CreateVariableInput struct {
	Name  string
	Value string
}

type UpdateVariableInput struct {
	Value *string
}

package file

import "time"

// Metadata describes one uploaded file. Pixel dimensions are present
// only when the file decoded as an image.
type Metadata struct {
	ID        string    `db:"id"`
	Path      string    `db:"path"`
	Size      int64     `db:"size"`
	MimeType  string    `db:"mime_type"`
	Width     *int      `db:"width"`
	Height    *int      `db:"height"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CreateMetadataInput struct {
	Path     string
	Size     int64
	MimeType string
	Width    *int
	Height   *int
	URL      string
}

type UpdateMetadataInput struct {
	Path     *string
	Size     *int64
	MimeType *string
	Width    *int
	Height   *int
	URL      *string
}

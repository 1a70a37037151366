package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/file"
)

const fileColumns = "id, path, size, mime_type, width, height, url, created_at, updated_at"

type FileRepository struct {
	table[file.Metadata, string]
}

func NewFileRepository(db *DB) *FileRepository {
	return &FileRepository{table: table[file.Metadata, string]{
		q:        db.Pool,
		name:     "files",
		columns:  fileColumns,
		orderBy:  "created_at, id",
		notFound: "file not found",
	}}
}

func (r *FileRepository) WithTx(tx pgx.Tx) *FileRepository {
	return &FileRepository{table: r.table.withQuerier(tx)}
}

func (r *FileRepository) Create(ctx context.Context, input file.CreateMetadataInput) (*file.Metadata, error) {
	return r.insertOne(ctx,
		[]string{"id", "path", "size", "mime_type", "width", "height", "url"},
		uuid.NewString(), input.Path, input.Size, input.MimeType, input.Width, input.Height, input.URL,
	)
}

func (r *FileRepository) Update(ctx context.Context, id string, input file.UpdateMetadataInput) (*file.Metadata, error) {
	fields := map[string]any{}
	if input.Path != nil {
		fields["path"] = *input.Path
	}
	if input.Size != nil {
		fields["size"] = *input.Size
	}
	if input.MimeType != nil {
		fields["mime_type"] = *input.MimeType
	}
	if input.Width != nil {
		fields["width"] = *input.Width
	}
	if input.Height != nil {
		fields["height"] = *input.Height
	}
	if input.URL != nil {
		fields["url"] = *input.URL
	}
	return r.updateFields(ctx, id, fields)
}

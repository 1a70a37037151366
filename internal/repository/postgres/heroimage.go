package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/heroimage"
)

const heroImageColumns = "id, file_id, podcast_id, episode_id, url_to, created_at, updated_at"

type HeroImageRepository struct {
	table[heroimage.HeroImage, int64]
}

func NewHeroImageRepository(db *DB) *HeroImageRepository {
	return &HeroImageRepository{table: table[heroimage.HeroImage, int64]{
		q:        db.Pool,
		name:     "hero_images",
		columns:  heroImageColumns,
		orderBy:  "created_at, id",
		notFound: "hero image not found",
	}}
}

func (r *HeroImageRepository) WithTx(tx pgx.Tx) *HeroImageRepository {
	return &HeroImageRepository{table: r.table.withQuerier(tx)}
}

func (r *HeroImageRepository) Create(ctx context.Context, input heroimage.CreateHeroImageInput) (*heroimage.HeroImage, error) {
	return r.insertOne(ctx,
		[]string{"file_id", "podcast_id", "episode_id", "url_to"},
		input.FileID, input.PodcastID, input.EpisodeID, input.URLTo,
	)
}

func (r *HeroImageRepository) Update(ctx context.Context, id int64, input heroimage.UpdateHeroImageInput) (*heroimage.HeroImage, error) {
	fields := map[string]any{}
	if input.FileID != nil {
		fields["file_id"] = *input.FileID
	}
	if input.PodcastID != nil {
		fields["podcast_id"] = *input.PodcastID
	}
	if input.EpisodeID != nil {
		fields["episode_id"] = *input.EpisodeID
	}
	if input.URLTo != nil {
		fields["url_to"] = *input.URLTo
	}
	return r.updateFields(ctx, id, fields)
}

// The schema does not constrain hero rows to one per owner, so these
// lookups pick the newest assignment rather than an arbitrary row.
func (r *HeroImageRepository) GetByPodcastID(ctx context.Context, podcastID int64) (*heroimage.HeroImage, error) {
	return r.latestWhere(ctx, "podcast_id = $1", podcastID)
}

func (r *HeroImageRepository) GetByEpisodeID(ctx context.Context, episodeID int64) (*heroimage.HeroImage, error) {
	return r.latestWhere(ctx, "episode_id = $1", episodeID)
}

func (r *HeroImageRepository) GetByFileID(ctx context.Context, fileID string) (*heroimage.HeroImage, error) {
	return r.latestWhere(ctx, "file_id = $1", fileID)
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/episode"
)

const episodeColumns = "id, podcast_id, title, slug, description, audio_url, published, published_at, hero_image_id, created_at, updated_at"

type EpisodeRepository struct {
	table[episode.Episode, int64]
}

func NewEpisodeRepository(db *DB) *EpisodeRepository {
	return &EpisodeRepository{table: table[episode.Episode, int64]{
		q:        db.Pool,
		name:     "episodes",
		columns:  episodeColumns,
		orderBy:  "created_at, id",
		notFound: "episode not found",
	}}
}

func (r *EpisodeRepository) WithTx(tx pgx.Tx) *EpisodeRepository {
	return &EpisodeRepository{table: r.table.withQuerier(tx)}
}

func (r *EpisodeRepository) Create(ctx context.Context, input episode.CreateEpisodeInput) (*episode.Episode, error) {
	return r.insertOne(ctx,
		[]string{"podcast_id", "title", "slug", "description", "audio_url", "hero_image_id"},
		input.PodcastID, input.Title, input.Slug, input.Description, input.AudioURL, input.HeroImageID,
	)
}

func (r *EpisodeRepository) Update(ctx context.Context, id int64, input episode.UpdateEpisodeInput) (*episode.Episode, error) {
	fields := map[string]any{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Slug != nil {
		fields["slug"] = *input.Slug
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.AudioURL != nil {
		fields["audio_url"] = *input.AudioURL
	}
	if input.Published != nil {
		fields["published"] = *input.Published
		if *input.Published {
			fields["published_at"] = time.Now().UTC()
		} else {
			fields["published_at"] = nil
		}
	}
	if input.HeroImageID != nil {
		fields["hero_image_id"] = *input.HeroImageID
	}
	return r.updateFields(ctx, id, fields)
}

// GetBySlug resolves an episode by its composite natural key.
func (r *EpisodeRepository) GetBySlug(ctx context.Context, podcastID int64, slug string) (*episode.Episode, error) {
	return r.oneWhere(ctx, "podcast_id = $1 AND slug = $2", podcastID, slug)
}

func (r *EpisodeRepository) ListByPodcastID(ctx context.Context, podcastID int64) ([]episode.Episode, error) {
	return r.manyWhere(ctx, "podcast_id = $1", podcastID)
}

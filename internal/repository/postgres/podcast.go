package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"personacast/internal/domain/podcast"
)

const podcastColumns = "id, title, slug, description, published, published_at, hero_image_id, created_at, updated_at"

type PodcastRepository struct {
	table[podcast.Podcast, int64]
}

func NewPodcastRepository(db *DB) *PodcastRepository {
	return &PodcastRepository{table: table[podcast.Podcast, int64]{
		q:        db.Pool,
		name:     "podcasts",
		columns:  podcastColumns,
		orderBy:  "created_at, id",
		notFound: "podcast not found",
	}}
}

func (r *PodcastRepository) WithTx(tx pgx.Tx) *PodcastRepository {
	return &PodcastRepository{table: r.table.withQuerier(tx)}
}

func (r *PodcastRepository) Create(ctx context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error) {
	return r.insertOne(ctx,
		[]string{"title", "slug", "description", "hero_image_id"},
		input.Title, input.Slug, input.Description, input.HeroImageID,
	)
}

func (r *PodcastRepository) Update(ctx context.Context, id int64, input podcast.UpdatePodcastInput) (*podcast.Podcast, error) {
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

func (r *PodcastRepository) GetBySlug(ctx context.Context, slug string) (*podcast.Podcast, error) {
	return r.oneWhere(ctx, "slug = $1", slug)
}

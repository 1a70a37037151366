package episode

import "time"

// Episode belongs to a podcast; its slug is unique within that podcast.
type Episode struct {
	ID          int64      `db:"id"`
	PodcastID   int64      `db:"podcast_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	AudioURL    *string    `db:"audio_url"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	HeroImageID *int64     `db:"hero_image_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type CreateEpisodeInput struct {
	PodcastID   int64
	Title       string
	Slug        string
	Description string
	AudioURL    *string
	HeroImageID *int64
}

type UpdateEpisodeInput struct {
	Title       *string
	Slug        *string
	Description *string
	AudioURL    *string
	Published   *bool
	HeroImageID *int64
}

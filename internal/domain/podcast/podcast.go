package podcast

import "time"

type Podcast struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	HeroImageID *int64     `db:"hero_image_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type CreatePodcastInput struct {
	Title       string
	Slug        string
	Description string
	HeroImageID *int64
}

type UpdatePodcastInput struct {
	Title       *string
	Slug        *string
	Description *string
	Published   *bool
	HeroImageID *int64
}

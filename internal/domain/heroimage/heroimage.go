package heroimage

import "time"

// HeroImage designates an uploaded file as the featured image of a
// podcast or an episode (or neither, for standalone use).
type HeroImage struct {
	ID        int64     `db:"id"`
	FileID    string    `db:"file_id"`
	PodcastID *int64    `db:"podcast_id"`
	EpisodeID *int64    `db:"episode_id"`
	URLTo     *string   `db:"url_to"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CreateHeroImageInput struct {
	FileID    string
	PodcastID *int64
	EpisodeID *int64
	URLTo     *string
}

type UpdateHeroImageInput struct {
	FileID    *string
	PodcastID *int64
	EpisodeID *int64
	URLTo     *string
}

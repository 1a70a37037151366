package service

import (
	"context"
	"errors"

	"personacast/internal/domain/podcast"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

type PodcastService struct {
	CRUD[podcast.Podcast, int64, podcast.CreatePodcastInput, podcast.UpdatePodcastInput]
	repo repository.PodcastRepository
}

func NewPodcastService(repo repository.PodcastRepository) *PodcastService {
	return &PodcastService{
		CRUD: NewCRUD[podcast.Podcast, int64, podcast.CreatePodcastInput, podcast.UpdatePodcastInput](repo),
		repo: repo,
	}
}

// Create rejects a taken slug before inserting; a concurrent insert of
// the same slug still surfaces as a conflict via the unique index.
func (s *PodcastService) Create(ctx context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error) {
	available, err := s.CheckSlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.Conflict("slug already in use")
	}
	return s.repo.Create(ctx, input)
}

func (s *PodcastService) GetBySlug(ctx context.Context, slug string) (*podcast.Podcast, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// CheckSlug reports whether the slug is free to use.
func (s *PodcastService) CheckSlug(ctx context.Context, slug string) (bool, error) {
	_, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Publish marks the podcast visible; the published_at timestamp is
// stamped by the data layer as part of the partial update.
func (s *PodcastService) Publish(ctx context.Context, id int64) (*podcast.Podcast, error) {
	published := true
	return s.repo.Update(ctx, id, podcast.UpdatePodcastInput{Published: &published})
}

func (s *PodcastService) Unpublish(ctx context.Context, id int64) (*podcast.Podcast, error) {
	published := false
	return s.repo.Update(ctx, id, podcast.UpdatePodcastInput{Published: &published})
}

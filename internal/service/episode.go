package service

import (
	"context"
	"errors"

	"personacast/internal/domain/episode"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

type EpisodeService struct {
	CRUD[episode.Episode, int64, episode.CreateEpisodeInput, episode.UpdateEpisodeInput]
	repo        repository.EpisodeRepository
	podcastRepo repository.PodcastRepository
}

func NewEpisodeService(repo repository.EpisodeRepository, podcastRepo repository.PodcastRepository) *EpisodeService {
	return &EpisodeService{
		CRUD:        NewCRUD[episode.Episode, int64, episode.CreateEpisodeInput, episode.UpdateEpisodeInput](repo),
		repo:        repo,
		podcastRepo: podcastRepo,
	}
}

// Create verifies the owning podcast exists and that the slug is free
// within it.
func (s *EpisodeService) Create(ctx context.Context, input episode.CreateEpisodeInput) (*episode.Episode, error) {
	if _, err := s.podcastRepo.GetByID(ctx, input.PodcastID); err != nil {
		return nil, err
	}

	_, err := s.repo.GetBySlug(ctx, input.PodcastID, input.Slug)
	if err == nil {
		return nil, apperrors.Conflict("episode slug already in use for this podcast")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return s.repo.Create(ctx, input)
}

// GetByPodcastSlug resolves the composite natural key: podcast slug
// then episode slug within that podcast.
func (s *EpisodeService) GetByPodcastSlug(ctx context.Context, podcastSlug, episodeSlug string) (*episode.Episode, error) {
	pod, err := s.podcastRepo.GetBySlug(ctx, podcastSlug)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, pod.ID, episodeSlug)
}

func (s *EpisodeService) ListByPodcastSlug(ctx context.Context, podcastSlug string) ([]episode.Episode, error) {
	pod, err := s.podcastRepo.GetBySlug(ctx, podcastSlug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByPodcastID(ctx, pod.ID)
}

func (s *EpisodeService) Publish(ctx context.Context, id int64) (*episode.Episode, error) {
	published := true
	return s.repo.Update(ctx, id, episode.UpdateEpisodeInput{Published: &published})
}

func (s *EpisodeService) Unpublish(ctx context.Context, id int64) (*episode.Episode, error) {
	published := false
	return s.repo.Update(ctx, id, episode.UpdateEpisodeInput{Published: &published})
}

package service

import (
	"context"

	"personacast/internal/domain/file"
	"personacast/internal/domain/heroimage"
	"personacast/internal/repository"
)

type HeroImageService struct {
	CRUD[heroimage.HeroImage, int64, heroimage.CreateHeroImageInput, heroimage.UpdateHeroImageInput]
	repo        repository.HeroImageRepository
	fileRepo    repository.FileRepository
	podcastRepo repository.PodcastRepository
	episodeRepo repository.EpisodeRepository
}

func NewHeroImageService(
	repo repository.HeroImageRepository,
	fileRepo repository.FileRepository,
	podcastRepo repository.PodcastRepository,
	episodeRepo repository.EpisodeRepository,
) *HeroImageService {
	return &HeroImageService{
		CRUD:        NewCRUD[heroimage.HeroImage, int64, heroimage.CreateHeroImageInput, heroimage.UpdateHeroImageInput](repo),
		repo:        repo,
		fileRepo:    fileRepo,
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
	}
}

// Create resolves the referenced file and owners before inserting, so a
// dangling reference fails with NotFound instead of a storage error.
func (s *HeroImageService) Create(ctx context.Context, input heroimage.CreateHeroImageInput) (*heroimage.HeroImage, error) {
	if _, err := s.fileRepo.GetByID(ctx, input.FileID); err != nil {
		return nil, err
	}
	if input.PodcastID != nil {
		if _, err := s.podcastRepo.GetByID(ctx, *input.PodcastID); err != nil {
			return nil, err
		}
	}
	if input.EpisodeID != nil {
		if _, err := s.episodeRepo.GetByID(ctx, *input.EpisodeID); err != nil {
			return nil, err
		}
	}
	return s.repo.Create(ctx, input)
}

// ForPodcastSlug returns the hero image of the podcast with the given
// slug, along with its file metadata.
func (s *HeroImageService) ForPodcastSlug(ctx context.Context, slug string) (*heroimage.HeroImage, *file.Metadata, error) {
	pod, err := s.podcastRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	hero, err := s.repo.GetByPodcastID(ctx, pod.ID)
	if err != nil {
		return nil, nil, err
	}

	meta, err := s.fileRepo.GetByID(ctx, hero.FileID)
	if err != nil {
		return nil, nil, err
	}
	return hero, meta, nil
}

// ForEpisodeSlug resolves podcast slug then episode slug, returning the
// episode's hero image and file metadata.
func (s *HeroImageService) ForEpisodeSlug(ctx context.Context, podcastSlug, episodeSlug string) (*heroimage.HeroImage, *file.Metadata, error) {
	pod, err := s.podcastRepo.GetBySlug(ctx, podcastSlug)
	if err != nil {
		return nil, nil, err
	}

	ep, err := s.episodeRepo.GetBySlug(ctx, pod.ID, episodeSlug)
	if err != nil {
		return nil, nil, err
	}

	hero, err := s.repo.GetByEpisodeID(ctx, ep.ID)
	if err != nil {
		return nil, nil, err
	}

	meta, err := s.fileRepo.GetByID(ctx, hero.FileID)
	if err != nil {
		return nil, nil, err
	}
	return hero, meta, nil
}

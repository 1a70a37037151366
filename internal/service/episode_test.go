package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personacast/internal/domain/episode"
	"personacast/internal/domain/podcast"
	apperrors "personacast/pkg/errors"
)

func newEpisodeFixture(t *testing.T) (*EpisodeService, *podcast.Podcast) {
	t.Helper()

	podcasts := newFakePodcastRepo()
	pod, err := podcasts.Create(context.Background(), podcast.CreatePodcastInput{Title: "Show", Slug: "show"})
	require.NoError(t, err)

	return NewEpisodeService(newFakeEpisodeRepo(), podcasts), pod
}

func TestEpisodeService_Create(t *testing.T) {
	svc, pod := newEpisodeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Pilot", Slug: "pilot"})
	require.NoError(t, err)
	assert.Equal(t, pod.ID, created.PodcastID)
}

func TestEpisodeService_Create_UnknownPodcast(t *testing.T) {
	svc, _ := newEpisodeFixture(t)

	_, err := svc.Create(context.Background(), episode.CreateEpisodeInput{PodcastID: 999, Title: "Pilot", Slug: "pilot"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEpisodeService_Create_DuplicateSlugWithinPodcast(t *testing.T) {
	svc, pod := newEpisodeFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Pilot", Slug: "pilot"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Other", Slug: "pilot"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEpisodeService_GetByPodcastSlug(t *testing.T) {
	svc, pod := newEpisodeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Pilot", Slug: "pilot"})
	require.NoError(t, err)

	found, err := svc.GetByPodcastSlug(ctx, "show", "pilot")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByPodcastSlug(ctx, "show", "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEpisodeService_ListByPodcastSlug(t *testing.T) {
	svc, pod := newEpisodeFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Pilot", Slug: "pilot"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, episode.CreateEpisodeInput{PodcastID: pod.ID, Title: "Two", Slug: "two"})
	require.NoError(t, err)

	episodes, err := svc.ListByPodcastSlug(ctx, "show")
	require.NoError(t, err)
	assert.Len(t, episodes, 2)
}

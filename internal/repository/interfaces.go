package repository

import (
	"context"

	"personacast/internal/domain/account"
	"personacast/internal/domain/apiclient"
	"personacast/internal/domain/episode"
	"personacast/internal/domain/file"
	"personacast/internal/domain/heroimage"
	"personacast/internal/domain/menuitem"
	"personacast/internal/domain/podcast"
	"personacast/internal/domain/user"
	"personacast/internal/domain/variable"
)

// CRUD is the generic adapter contract shared by every entity,
// parameterized by record type, identifier type and the create/update
// input shapes. Numeric-id and string-id adapters are instantiations of
// the same contract.
type CRUD[T any, ID comparable, C any, U any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id ID) (*T, error)
	Create(ctx context.Context, input C) (*T, error)
	Update(ctx context.Context, id ID, input U) (*T, error)
	Delete(ctx context.Context, id ID) error
}

type UserRepository interface {
	CRUD[user.User, string, user.CreateUserInput, user.UpdateUserInput]
}

type AccountRepository interface {
	CRUD[account.Account, string, account.CreateAccountInput, account.UpdateAccountInput]
	ListByUserID(ctx context.Context, userID string) ([]account.Account, error)
}

type PodcastRepository interface {
	CRUD[podcast.Podcast, int64, podcast.CreatePodcastInput, podcast.UpdatePodcastInput]
	GetBySlug(ctx context.Context, slug string) (*podcast.Podcast, error)
}

type EpisodeRepository interface {
	CRUD[episode.Episode, int64, episode.CreateEpisodeInput, episode.UpdateEpisodeInput]
	GetBySlug(ctx context.Context, podcastID int64, slug string) (*episode.Episode, error)
	ListByPodcastID(ctx context.Context, podcastID int64) ([]episode.Episode, error)
}

type APIClientRepository interface {
	CRUD[apiclient.APIClient, int64, apiclient.CreateAPIClientInput, apiclient.UpdateAPIClientInput]
}

type VariableRepository interface {
	CRUD[variable.Variable, int64, variable.CreateVariableInput, variable.UpdateVariableInput]
	GetByName(ctx context.Context, name string) (*variable.Variable, error)
}

type FileRepository interface {
	CRUD[file.Metadata, string, file.CreateMetadataInput, file.UpdateMetadataInput]
}

type HeroImageRepository interface {
	CRUD[heroimage.HeroImage, int64, heroimage.CreateHeroImageInput, heroimage.UpdateHeroImageInput]
	GetByPodcastID(ctx context.Context, podcastID int64) (*heroimage.HeroImage, error)
	GetByEpisodeID(ctx context.Context, episodeID int64) (*heroimage.HeroImage, error)
	GetByFileID(ctx context.Context, fileID string) (*heroimage.HeroImage, error)
}

type MenuItemRepository interface {
	CRUD[menuitem.MenuItem, int64, menuitem.CreateMenuItemInput, menuitem.UpdateMenuItemInput]
	// Reorder applies a batch of position/parent moves atomically.
	Reorder(ctx context.Context, moves []menuitem.Move) error
}

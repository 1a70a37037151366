package service

import (
	"context"
	"fmt"
	"time"

	"personacast/internal/domain/apiclient"
	"personacast/internal/domain/episode"
	"personacast/internal/domain/file"
	"personacast/internal/domain/heroimage"
	"personacast/internal/domain/menuitem"
	"personacast/internal/domain/podcast"
	"personacast/internal/domain/user"
	"personacast/internal/domain/variable"
	apperrors "personacast/pkg/errors"
)

// In-memory repository fakes. Each one keeps records in a map and
// mirrors the data layer's not-found and conflict behavior.

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, input user.CreateUserInput) (*user.User, error) {
	f.nextID++
	u := user.User{
		ID:        fmt.Sprintf("user-%d", f.nextID),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		IsActive:  true,
		Image:     input.Image,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users[u.ID] = u
	return &u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, input user.UpdateUserInput) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	if input.Image != nil {
		u.Image = input.Image
	}
	u.UpdatedAt = time.Now()
	f.users[id] = u
	return &u, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.NotFound("user not found")
	}
	delete(f.users, id)
	return nil
}

type fakePodcastRepo struct {
	podcasts map[int64]podcast.Podcast
	nextID   int64
}

func newFakePodcastRepo() *fakePodcastRepo {
	return &fakePodcastRepo{podcasts: map[int64]podcast.Podcast{}}
}

func (f *fakePodcastRepo) GetAll(_ context.Context) ([]podcast.Podcast, error) {
	out := make([]podcast.Podcast, 0, len(f.podcasts))
	for _, p := range f.podcasts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePodcastRepo) GetByID(_ context.Context, id int64) (*podcast.Podcast, error) {
	p, ok := f.podcasts[id]
	if !ok {
		return nil, apperrors.NotFound("podcast not found")
	}
	return &p, nil
}

func (f *fakePodcastRepo) GetBySlug(_ context.Context, slug string) (*podcast.Podcast, error) {
	for _, p := range f.podcasts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("podcast not found")
}

func (f *fakePodcastRepo) Create(_ context.Context, input podcast.CreatePodcastInput) (*podcast.Podcast, error) {
	f.nextID++
	p := podcast.Podcast{
		ID:          f.nextID,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		HeroImageID: input.HeroImageID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.podcasts[p.ID] = p
	return &p, nil
}

func (f *fakePodcastRepo) Update(_ context.Context, id int64, input podcast.UpdatePodcastInput) (*podcast.Podcast, error) {
	p, ok := f.podcasts[id]
	if !ok {
		return nil, apperrors.NotFound("podcast not found")
	}
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Slug != nil {
		p.Slug = *input.Slug
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Published != nil {
		p.Published = *input.Published
		if *input.Published {
			now := time.Now().UTC()
			p.PublishedAt = &now
		} else {
			p.PublishedAt = nil
		}
	}
	if input.HeroImageID != nil {
		p.HeroImageID = input.HeroImageID
	}
	p.UpdatedAt = time.Now()
	f.podcasts[id] = p
	return &p, nil
}

func (f *fakePodcastRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.podcasts[id]; !ok {
		return apperrors.NotFound("podcast not found")
	}
	delete(f.podcasts, id)
	return nil
}

type fakeEpisodeRepo struct {
	episodes map[int64]episode.Episode
	nextID   int64
}

func newFakeEpisodeRepo() *fakeEpisodeRepo {
	return &fakeEpisodeRepo{episodes: map[int64]episode.Episode{}}
}

func (f *fakeEpisodeRepo) GetAll(_ context.Context) ([]episode.Episode, error) {
	out := make([]episode.Episode, 0, len(f.episodes))
	for _, e := range f.episodes {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEpisodeRepo) GetByID(_ context.Context, id int64) (*episode.Episode, error) {
	e, ok := f.episodes[id]
	if !ok {
		return nil, apperrors.NotFound("episode not found")
	}
	return &e, nil
}

func (f *fakeEpisodeRepo) GetBySlug(_ context.Context, podcastID int64, slug string) (*episode.Episode, error) {
	for _, e := range f.episodes {
		if e.PodcastID == podcastID && e.Slug == slug {
			return &e, nil
		}
	}
	return nil, apperrors.NotFound("episode not found")
}

func (f *fakeEpisodeRepo) ListByPodcastID(_ context.Context, podcastID int64) ([]episode.Episode, error) {
	out := []episode.Episode{}
	for _, e := range f.episodes {
		if e.PodcastID == podcastID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEpisodeRepo) Create(_ context.Context, input episode.CreateEpisodeInput) (*episode.Episode, error) {
	f.nextID++
	e := episode.Episode{
		ID:          f.nextID,
		PodcastID:   input.PodcastID,
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		AudioURL:    input.AudioURL,
		HeroImageID: input.HeroImageID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.episodes[e.ID] = e
	return &e, nil
}

func (f *fakeEpisodeRepo) Update(_ context.Context, id int64, input episode.UpdateEpisodeInput) (*episode.Episode, error) {
	e, ok := f.episodes[id]
	if !ok {
		return nil, apperrors.NotFound("episode not found")
	}
	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Slug != nil {
		e.Slug = *input.Slug
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.AudioURL != nil {
		e.AudioURL = input.AudioURL
	}
	if input.Published != nil {
		e.Published = *input.Published
		if *input.Published {
			now := time.Now().UTC()
			e.PublishedAt = &now
		} else {
			e.PublishedAt = nil
		}
	}
	if input.HeroImageID != nil {
		e.HeroImageID = input.HeroImageID
	}
	e.UpdatedAt = time.Now()
	f.episodes[id] = e
	return &e, nil
}

func (f *fakeEpisodeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.episodes[id]; !ok {
		return apperrors.NotFound("episode not found")
	}
	delete(f.episodes, id)
	return nil
}

type fakeAPIClientRepo struct {
	clients map[int64]apiclient.APIClient
	nextID  int64
}

func newFakeAPIClientRepo() *fakeAPIClientRepo {
	return &fakeAPIClientRepo{clients: map[int64]apiclient.APIClient{}}
}

func (f *fakeAPIClientRepo) GetAll(_ context.Context) ([]apiclient.APIClient, error) {
	out := make([]apiclient.APIClient, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeAPIClientRepo) GetByID(_ context.Context, id int64) (*apiclient.APIClient, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, apperrors.NotFound("api client not found")
	}
	return &c, nil
}

func (f *fakeAPIClientRepo) Create(_ context.Context, input apiclient.CreateAPIClientInput) (*apiclient.APIClient, error) {
	f.nextID++
	c := apiclient.APIClient{
		ID:          f.nextID,
		Name:        input.Name,
		Description: input.Description,
		Token:       input.Token,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.clients[c.ID] = c
	return &c, nil
}

func (f *fakeAPIClientRepo) Update(_ context.Context, id int64, input apiclient.UpdateAPIClientInput) (*apiclient.APIClient, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, apperrors.NotFound("api client not found")
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	c.UpdatedAt = time.Now()
	f.clients[id] = c
	return &c, nil
}

func (f *fakeAPIClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.clients[id]; !ok {
		return apperrors.NotFound("api client not found")
	}
	delete(f.clients, id)
	return nil
}

type fakeVariableRepo struct {
	variables map[int64]variable.Variable
	nextID    int64
}

func newFakeVariableRepo() *fakeVariableRepo {
	return &fakeVariableRepo{variables: map[int64]variable.Variable{}}
}

func (f *fakeVariableRepo) GetAll(_ context.Context) ([]variable.Variable, error) {
	out := make([]variable.Variable, 0, len(f.variables))
	for _, v := range f.variables {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVariableRepo) GetByID(_ context.Context, id int64) (*variable.Variable, error) {
	v, ok := f.variables[id]
	if !ok {
		return nil, apperrors.NotFound("variable not found")
	}
	return &v, nil
}

func (f *fakeVariableRepo) GetByName(_ context.Context, name string) (*variable.Variable, error) {
	for _, v := range f.variables {
		if v.Name == name {
			return &v, nil
		}
	}
	return nil, apperrors.NotFound("variable not found")
}

func (f *fakeVariableRepo) Create(_ context.Context, input variable.CreateVariableInput) (*variable.Variable, error) {
	for _, v := range f.variables {
		if v.Name == input.Name {
			return nil, apperrors.Conflict("variable already exists")
		}
	}
	f.nextID++
	v := variable.Variable{
		ID:        f.nextID,
		Name:      input.Name,
		Value:     input.Value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.variables[v.ID] = v
	return &v, nil
}

func (f *fakeVariableRepo) Update(_ context.Context, id int64, input variable.UpdateVariableInput) (*variable.Variable, error) {
	v, ok := f.variables[id]
	if !ok {
		return nil, apperrors.NotFound("variable not found")
	}
	if input.Value != nil {
		v.Value = *input.Value
	}
	v.UpdatedAt = time.Now()
	f.variables[id] = v
	return &v, nil
}

func (f *fakeVariableRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.variables[id]; !ok {
		return apperrors.NotFound("variable not found")
	}
	delete(f.variables, id)
	return nil
}

type fakeFileRepo struct {
	files  map[string]file.Metadata
	nextID int
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[string]file.Metadata{}}
}

func (f *fakeFileRepo) GetAll(_ context.Context) ([]file.Metadata, error) {
	out := make([]file.Metadata, 0, len(f.files))
	for _, m := range f.files {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeFileRepo) GetByID(_ context.Context, id string) (*file.Metadata, error) {
	m, ok := f.files[id]
	if !ok {
		return nil, apperrors.NotFound("file not found")
	}
	return &m, nil
}

func (f *fakeFileRepo) Create(_ context.Context, input file.CreateMetadataInput) (*file.Metadata, error) {
	f.nextID++
	m := file.Metadata{
		ID:        fmt.Sprintf("file-%d", f.nextID),
		Path:      input.Path,
		Size:      input.Size,
		MimeType:  input.MimeType,
		Width:     input.Width,
		Height:    input.Height,
		URL:       input.URL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.files[m.ID] = m
	return &m, nil
}

func (f *fakeFileRepo) Update(_ context.Context, id string, input file.UpdateMetadataInput) (*file.Metadata, error) {
	m, ok := f.files[id]
	if !ok {
		return nil, apperrors.NotFound("file not found")
	}
	if input.Path != nil {
		m.Path = *input.Path
	}
	if input.URL != nil {
		m.URL = *input.URL
	}
	m.UpdatedAt = time.Now()
	f.files[id] = m
	return &m, nil
}

func (f *fakeFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.files[id]; !ok {
		return apperrors.NotFound("file not found")
	}
	delete(f.files, id)
	return nil
}

type fakeHeroImageRepo struct {
	heroes map[int64]heroimage.HeroImage
	nextID int64
}

func newFakeHeroImageRepo() *fakeHeroImageRepo {
	return &fakeHeroImageRepo{heroes: map[int64]heroimage.HeroImage{}}
}

func (f *fakeHeroImageRepo) GetAll(_ context.Context) ([]heroimage.HeroImage, error) {
	out := make([]heroimage.HeroImage, 0, len(f.heroes))
	for _, h := range f.heroes {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHeroImageRepo) GetByID(_ context.Context, id int64) (*heroimage.HeroImage, error) {
	h, ok := f.heroes[id]
	if !ok {
		return nil, apperrors.NotFound("hero image not found")
	}
	return &h, nil
}

// newest reproduces the store's latest-assignment lookup: the highest id
// among the matches wins.
func (f *fakeHeroImageRepo) newest(match func(heroimage.HeroImage) bool) (*heroimage.HeroImage, error) {
	var found *heroimage.HeroImage
	for _, h := range f.heroes {
		h := h
		if match(h) && (found == nil || h.ID > found.ID) {
			found = &h
		}
	}
	if found == nil {
		return nil, apperrors.NotFound("hero image not found")
	}
	return found, nil
}

func (f *fakeHeroImageRepo) GetByPodcastID(_ context.Context, podcastID int64) (*heroimage.HeroImage, error) {
	return f.newest(func(h heroimage.HeroImage) bool {
		return h.PodcastID != nil && *h.PodcastID == podcastID
	})
}

func (f *fakeHeroImageRepo) GetByEpisodeID(_ context.Context, episodeID int64) (*heroimage.HeroImage, error) {
	return f.newest(func(h heroimage.HeroImage) bool {
		return h.EpisodeID != nil && *h.EpisodeID == episodeID
	})
}

func (f *fakeHeroImageRepo) GetByFileID(_ context.Context, fileID string) (*heroimage.HeroImage, error) {
	return f.newest(func(h heroimage.HeroImage) bool {
		return h.FileID == fileID
	})
}

func (f *fakeHeroImageRepo) Create(_ context.Context, input heroimage.CreateHeroImageInput) (*heroimage.HeroImage, error) {
	f.nextID++
	h := heroimage.HeroImage{
		ID:        f.nextID,
		FileID:    input.FileID,
		PodcastID: input.PodcastID,
		EpisodeID: input.EpisodeID,
		URLTo:     input.URLTo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.heroes[h.ID] = h
	return &h, nil
}

func (f *fakeHeroImageRepo) Update(_ context.Context, id int64, input heroimage.UpdateHeroImageInput) (*heroimage.HeroImage, error) {
	h, ok := f.heroes[id]
	if !ok {
		return nil, apperrors.NotFound("hero image not found")
	}
	if input.FileID != nil {
		h.FileID = *input.FileID
	}
	if input.PodcastID != nil {
		h.PodcastID = input.PodcastID
	}
	if input.EpisodeID != nil {
		h.EpisodeID = input.EpisodeID
	}
	if input.URLTo != nil {
		h.URLTo = input.URLTo
	}
	h.UpdatedAt = time.Now()
	f.heroes[id] = h
	return &h, nil
}

func (f *fakeHeroImageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.heroes[id]; !ok {
		return apperrors.NotFound("hero image not found")
	}
	delete(f.heroes, id)
	return nil
}

type fakeMenuItemRepo struct {
	items  map[int64]menuitem.MenuItem
	nextID int64
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{items: map[int64]menuitem.MenuItem{}}
}

func (f *fakeMenuItemRepo) GetAll(_ context.Context) ([]menuitem.MenuItem, error) {
	out := make([]menuitem.MenuItem, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMenuItemRepo) GetByID(_ context.Context, id int64) (*menuitem.MenuItem, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFound("menu item not found")
	}
	return &m, nil
}

func (f *fakeMenuItemRepo) Create(_ context.Context, input menuitem.CreateMenuItemInput) (*menuitem.MenuItem, error) {
	f.nextID++
	roles := input.RequiredRoles
	if roles == nil {
		roles = []string{}
	}
	m := menuitem.MenuItem{
		ID:            f.nextID,
		Label:         input.Label,
		Href:          input.Href,
		Position:      input.Position,
		ParentID:      input.ParentID,
		RequiredRoles: roles,
		IsSystem:      input.IsSystem,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.items[m.ID] = m
	return &m, nil
}

func (f *fakeMenuItemRepo) Update(_ context.Context, id int64, input menuitem.UpdateMenuItemInput) (*menuitem.MenuItem, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFound("menu item not found")
	}
	if input.Label != nil {
		m.Label = *input.Label
	}
	if input.Href != nil {
		m.Href = *input.Href
	}
	if input.Position != nil {
		m.Position = *input.Position
	}
	if input.ParentID != nil {
		m.ParentID = input.ParentID
	}
	if input.RequiredRoles != nil {
		m.RequiredRoles = *input.RequiredRoles
	}
	m.UpdatedAt = time.Now()
	f.items[id] = m
	return &m, nil
}

func (f *fakeMenuItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFound("menu item not found")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuItemRepo) Reorder(_ context.Context, moves []menuitem.Move) error {
	for _, mv := range moves {
		m, ok := f.items[mv.ID]
		if !ok {
			return apperrors.NotFound("menu item not found")
		}
		m.Position = mv.Position
		m.ParentID = mv.ParentID
		f.items[mv.ID] = m
	}
	return nil
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/file"
	"personacast/internal/domain/heroimage"
	"personacast/internal/service"
)

type HeroImageHandler struct {
	heroes *service.HeroImageService
}

func NewHeroImageHandler(heroes *service.HeroImageService) *HeroImageHandler {
	return &HeroImageHandler{heroes: heroes}
}

type CreateHeroImageRequest struct {
	FileID    string  `json:"fileId"`
	PodcastID *int64  `json:"podcastId,omitempty"`
	EpisodeID *int64  `json:"episodeId,omitempty"`
	URLTo     *string `json:"urlTo,omitempty"`
}

type UpdateHeroImageRequest struct {
	FileID    *string `json:"fileId,omitempty"`
	PodcastID *int64  `json:"podcastId,omitempty"`
	EpisodeID *int64  `json:"episodeId,omitempty"`
	URLTo     *string `json:"urlTo,omitempty"`
}

type HeroImageResponse struct {
	ID        int64         `json:"id"`
	FileID    string        `json:"fileId"`
	PodcastID *int64        `json:"podcastId,omitempty"`
	EpisodeID *int64        `json:"episodeId,omitempty"`
	URLTo     *string       `json:"urlTo,omitempty"`
	File      *FileResponse `json:"file,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (h *HeroImageHandler) List(c echo.Context) error {
	heroes, err := h.heroes.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]HeroImageResponse, 0, len(heroes))
	for i := range heroes {
		out = append(out, toHeroImageResponse(&heroes[i], nil))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HeroImageHandler) Create(c echo.Context) error {
	var req CreateHeroImageRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if req.FileID == "" {
		return respondValidationErrors(c, map[string]string{"fileId": "file id is required"})
	}

	created, err := h.heroes.Create(c.Request().Context(), heroimage.CreateHeroImageInput{
		FileID:    req.FileID,
		PodcastID: req.PodcastID,
		EpisodeID: req.EpisodeID,
		URLTo:     req.URLTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toHeroImageResponse(created, nil))
}

func (h *HeroImageHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	found, err := h.heroes.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHeroImageResponse(found, nil))
}

func (h *HeroImageHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req UpdateHeroImageRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	updated, err := h.heroes.Update(c.Request().Context(), id, heroimage.UpdateHeroImageInput{
		FileID:    req.FileID,
		PodcastID: req.PodcastID,
		EpisodeID: req.EpisodeID,
		URLTo:     req.URLTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHeroImageResponse(updated, nil))
}

func (h *HeroImageHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.heroes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "hero image deleted")
}

// ForPodcast serves the hero image of a podcast addressed by slug,
// with the backing file embedded.
func (h *HeroImageHandler) ForPodcast(c echo.Context) error {
	hero, meta, err := h.heroes.ForPodcastSlug(c.Request().Context(), c.Param(paramIDOrSlug))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHeroImageResponse(hero, meta))
}

func (h *HeroImageHandler) ForEpisode(c echo.Context) error {
	hero, meta, err := h.heroes.ForEpisodeSlug(c.Request().Context(), c.Param(paramIDOrSlug), c.Param("episodeSlug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHeroImageResponse(hero, meta))
}

func toHeroImageResponse(hero *heroimage.HeroImage, meta *file.Metadata) HeroImageResponse {
	resp := HeroImageResponse{
		ID:        hero.ID,
		FileID:    hero.FileID,
		PodcastID: hero.PodcastID,
		EpisodeID: hero.EpisodeID,
		URLTo:     hero.URLTo,
		CreatedAt: hero.CreatedAt,
		UpdatedAt: hero.UpdatedAt,
	}
	if meta != nil {
		f := toFileResponse(meta)
		resp.File = &f
	}
	return resp
}

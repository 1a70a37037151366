package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/episode"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

type EpisodeHandler struct {
	episodes *service.EpisodeService
}

func NewEpisodeHandler(episodes *service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{episodes: episodes}
}

type CreateEpisodeRequest struct {
	PodcastID   int64   `json:"podcastId"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	AudioURL    *string `json:"audioUrl,omitempty"`
	HeroImageID *int64  `json:"heroImageId,omitempty"`
}

type UpdateEpisodeRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	AudioURL    *string `json:"audioUrl,omitempty"`
	HeroImageID *int64  `json:"heroImageId,omitempty"`
}

type EpisodeResponse struct {
	ID          int64      `json:"id"`
	PodcastID   int64      `json:"podcastId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	AudioURL    *string    `json:"audioUrl,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	HeroImageID *int64     `json:"heroImageId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (h *EpisodeHandler) List(c echo.Context) error {
	episodes, err := h.episodes.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, toEpisodeResponse(&episodes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EpisodeHandler) Create(c echo.Context) error {
	var req CreateEpisodeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if req.PodcastID <= 0 {
		fields["podcastId"] = "podcast id is required"
	}
	if err := validator.Title(req.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := validator.Slug(req.Slug); err != nil {
		fields["slug"] = err.Error()
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	created, err := h.episodes.Create(c.Request().Context(), episode.CreateEpisodeInput{
		PodcastID:   req.PodcastID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		AudioURL:    req.AudioURL,
		HeroImageID: req.HeroImageID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEpisodeResponse(created))
}

func (h *EpisodeHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	found, err := h.episodes.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEpisodeResponse(found))
}

func (h *EpisodeHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEpisodeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if req.Title != nil {
		if err := validator.Title(*req.Title); err != nil {
			fields["title"] = err.Error()
		}
	}
	if req.Slug != nil {
		if err := validator.Slug(*req.Slug); err != nil {
			fields["slug"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	updated, err := h.episodes.Update(c.Request().Context(), id, episode.UpdateEpisodeInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		AudioURL:    req.AudioURL,
		HeroImageID: req.HeroImageID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEpisodeResponse(updated))
}

func (h *EpisodeHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.episodes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "episode deleted")
}

func (h *EpisodeHandler) Publish(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	updated, err := h.episodes.Publish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEpisodeResponse(updated))
}

func (h *EpisodeHandler) Unpublish(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	updated, err := h.episodes.Unpublish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEpisodeResponse(updated))
}

func toEpisodeResponse(e *episode.Episode) EpisodeResponse {
	return EpisodeResponse{
		ID:          e.ID,
		PodcastID:   e.PodcastID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		AudioURL:    e.AudioURL,
		Published:   e.Published,
		PublishedAt: e.PublishedAt,
		HeroImageID: e.HeroImageID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

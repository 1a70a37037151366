package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/podcast"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

const (
	paramIDOrSlug = "idOrSlug"
	paramSlug     = "slug"
)

type PodcastHandler struct {
	podcasts *service.PodcastService
	episodes *service.EpisodeService
}

func NewPodcastHandler(podcasts *service.PodcastService, episodes *service.EpisodeService) *PodcastHandler {
	return &PodcastHandler{podcasts: podcasts, episodes: episodes}
}

type CreatePodcastRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	HeroImageID *int64 `json:"heroImageId,omitempty"`
}

type UpdatePodcastRequest struct {
	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	HeroImageID *int64  `json:"heroImageId,omitempty"`
}

type PodcastResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	HeroImageID *int64     `json:"heroImageId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CheckSlugResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

func (h *PodcastHandler) List(c echo.Context) error {
	podcasts, err := h.podcasts.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]PodcastResponse, 0, len(podcasts))
	for i := range podcasts {
		out = append(out, toPodcastResponse(&podcasts[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PodcastHandler) Create(c echo.Context) error {
	var req CreatePodcastRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if err := validator.Title(req.Title); err != nil {
		fields["title"] = err.Error()
	}
	if err := validator.Slug(req.Slug); err != nil {
		fields["slug"] = err.Error()
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	created, err := h.podcasts.Create(c.Request().Context(), podcast.CreatePodcastInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		HeroImageID: req.HeroImageID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPodcastResponse(created))
}

// Get resolves the path parameter as a numeric id first and falls back
// to a slug lookup.
func (h *PodcastHandler) Get(c echo.Context) error {
	found, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPodcastResponse(found))
}

func (h *PodcastHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, paramIDOrSlug)
	if err != nil {
		return err
	}

	var req UpdatePodcastRequest
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

	updated, err := h.podcasts.Update(c.Request().Context(), id, podcast.UpdatePodcastInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		HeroImageID: req.HeroImageID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPodcastResponse(updated))
}

func (h *PodcastHandler) Delete(c echo.Context) error {
	found, err := h.resolve(c)
	if err != nil {
		return err
	}

	if err := h.podcasts.Delete(c.Request().Context(), found.ID); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "podcast deleted")
}

func (h *PodcastHandler) Publish(c echo.Context) error {
	id, err := paramInt64(c, paramIDOrSlug)
	if err != nil {
		return err
	}

	updated, err := h.podcasts.Publish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPodcastResponse(updated))
}

func (h *PodcastHandler) Unpublish(c echo.Context) error {
	id, err := paramInt64(c, paramIDOrSlug)
	if err != nil {
		return err
	}

	updated, err := h.podcasts.Unpublish(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPodcastResponse(updated))
}

func (h *PodcastHandler) CheckSlug(c echo.Context) error {
	slug := c.QueryParam(paramSlug)
	if err := validator.Slug(slug); err != nil {
		return respondValidationErrors(c, map[string]string{"slug": err.Error()})
	}

	available, err := h.podcasts.CheckSlug(c.Request().Context(), slug)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CheckSlugResponse{Slug: slug, Available: available})
}

func (h *PodcastHandler) ListEpisodes(c echo.Context) error {
	episodes, err := h.episodes.ListByPodcastSlug(c.Request().Context(), c.Param(paramIDOrSlug))
	if err != nil {
		return err
	}

	out := make([]EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, toEpisodeResponse(&episodes[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PodcastHandler) resolve(c echo.Context) (*podcast.Podcast, error) {
	raw := c.Param(paramIDOrSlug)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return h.podcasts.GetByID(c.Request().Context(), id)
	}
	return h.podcasts.GetBySlug(c.Request().Context(), raw)
}

func toPodcastResponse(p *podcast.Podcast) PodcastResponse {
	return PodcastResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		HeroImageID: p.HeroImageID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

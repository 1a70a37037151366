package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/apiclient"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

type APIClientHandler struct {
	clients *service.APIClientService
}

func NewAPIClientHandler(clients *service.APIClientService) *APIClientHandler {
	return &APIClientHandler{clients: clients}
}

type CreateAPIClientRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateAPIClientRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// APIClientResponse never carries the token; it is only revealed once,
// in the create response.
type APIClientResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreatedAPIClientResponse struct {
	APIClientResponse
	Token string `json:"token"`
}

func (h *APIClientHandler) List(c echo.Context) error {
	clients, err := h.clients.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]APIClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toAPIClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *APIClientHandler) Create(c echo.Context) error {
	var req CreateAPIClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if err := validator.Name(req.Name); err != nil {
		return respondValidationErrors(c, map[string]string{"name": err.Error()})
	}

	created, err := h.clients.Create(c.Request().Context(), apiclient.CreateAPIClientInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedAPIClientResponse{
		APIClientResponse: toAPIClientResponse(created),
		Token:             created.Token,
	})
}

func (h *APIClientHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	found, err := h.clients.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAPIClientResponse(found))
}

func (h *APIClientHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req UpdateAPIClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if req.Name != nil {
		if err := validator.Name(*req.Name); err != nil {
			return respondValidationErrors(c, map[string]string{"name": err.Error()})
		}
	}

	updated, err := h.clients.Update(c.Request().Context(), id, apiclient.UpdateAPIClientInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAPIClientResponse(updated))
}

func (h *APIClientHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "api client deleted")
}

func toAPIClientResponse(a *apiclient.APIClient) APIClientResponse {
	return APIClientResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personacast/internal/domain/apiclient"
	"personacast/internal/service"
	apperrors "personacast/pkg/errors"
)

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

func newAPIClientHandler() *APIClientHandler {
	return NewAPIClientHandler(service.NewAPIClientService(newFakeAPIClientRepo(), 32))
}

func createAPIClient(t *testing.T, h *APIClientHandler, name string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/api-clients", strings.NewReader(`{"name":"`+name+`","description":"importer"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAPIClientHandler_Create_RevealsTokenOnce(t *testing.T) {
	h := newAPIClientHandler()

	rec, body := createAPIClient(t, h, "importer")
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Only the create response carries the secret.
	token, ok := body["token"].(string)
	require.True(t, ok, "create response must carry the token")
	assert.Len(t, token, 64)
}

func TestAPIClientHandler_List_OmitsToken(t *testing.T) {
	h := newAPIClientHandler()
	createAPIClient(t, h, "importer")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/api-clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.NotContains(t, list[0], "token")
	assert.Equal(t, "importer", list[0]["name"])
}

func TestAPIClientHandler_Get_OmitsToken(t *testing.T) {
	h := newAPIClientHandler()
	createAPIClient(t, h, "importer")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/api-clients/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Get(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "token")
	assert.Equal(t, "importer", body["name"])
}

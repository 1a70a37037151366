package service

import (
	"context"

	"personacast/internal/domain/apiclient"
	"personacast/internal/repository"
	"personacast/pkg/token"
)

type APIClientService struct {
	CRUD[apiclient.APIClient, int64, apiclient.CreateAPIClientInput, apiclient.UpdateAPIClientInput]
	repo       repository.APIClientRepository
	tokenBytes int
}

func NewAPIClientService(repo repository.APIClientRepository, tokenBytes int) *APIClientService {
	return &APIClientService{
		CRUD:       NewCRUD[apiclient.APIClient, int64, apiclient.CreateAPIClientInput, apiclient.UpdateAPIClientInput](repo),
		repo:       repo,
		tokenBytes: tokenBytes,
	}
}

// Create synthesizes the client secret server-side. Whatever the caller
// put in the Token field is discarded; the generated value is returned
// to the caller exactly once, in the creation response.
func (s *APIClientService) Create(ctx context.Context, input apiclient.CreateAPIClientInput) (*apiclient.APIClient, error) {
	secret, err := token.GenerateHex(s.tokenBytes)
	if err != nil {
		return nil, err
	}
	input.Token = secret

	return s.repo.Create(ctx, input)
}

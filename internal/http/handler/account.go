package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/account"
	"personacast/internal/service"
)

type AccountHandler struct {
	accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type CreateAccountRequest struct {
	UserID            string     `json:"userId"`
	Provider          string     `json:"provider"`
	ProviderAccountID string     `json:"providerAccountId"`
	AccessToken       *string    `json:"accessToken,omitempty"`
	RefreshToken      *string    `json:"refreshToken,omitempty"`
	TokenType         *string    `json:"tokenType,omitempty"`
	Scope             *string    `json:"scope,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
}

type UpdateAccountRequest struct {
	AccessToken  *string    `json:"accessToken,omitempty"`
	RefreshToken *string    `json:"refreshToken,omitempty"`
	TokenType    *string    `json:"tokenType,omitempty"`
	Scope        *string    `json:"scope,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

// AccountResponse deliberately omits provider token values.
type AccountResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Provider          string     `json:"provider"`
	ProviderAccountID string     `json:"providerAccountId"`
	Scope             *string    `json:"scope,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (h *AccountHandler) List(c echo.Context) error {
	if userID := c.QueryParam("userId"); userID != "" {
		accounts, err := h.accounts.ListByUserID(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toAccountResponses(accounts))
	}

	accounts, err := h.accounts.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponses(accounts))
}

func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateAccountRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if req.UserID == "" {
		fields["userId"] = "user id is required"
	}
	if req.Provider == "" {
		fields["provider"] = "provider is required"
	}
	if req.ProviderAccountID == "" {
		fields["providerAccountId"] = "provider account id is required"
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	created, err := h.accounts.Create(c.Request().Context(), account.CreateAccountInput{
		UserID:            req.UserID,
		Provider:          req.Provider,
		ProviderAccountID: req.ProviderAccountID,
		AccessToken:       req.AccessToken,
		RefreshToken:      req.RefreshToken,
		TokenType:         req.TokenType,
		Scope:             req.Scope,
		ExpiresAt:         req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAccountResponse(created))
}

func (h *AccountHandler) Get(c echo.Context) error {
	found, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(found))
}

func (h *AccountHandler) Update(c echo.Context) error {
	var req UpdateAccountRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	updated, err := h.accounts.Update(c.Request().Context(), c.Param("id"), account.UpdateAccountInput{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    req.TokenType,
		Scope:        req.Scope,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(updated))
}

func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "account deleted")
}

func toAccountResponses(accounts []account.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return out
}

func toAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		Provider:          a.Provider,
		ProviderAccountID: a.ProviderAccountID,
		Scope:             a.Scope,
		ExpiresAt:         a.ExpiresAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

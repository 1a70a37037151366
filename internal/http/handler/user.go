package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/user"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Image *string `json:"image,omitempty"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Image *string `json:"image,omitempty"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if err := validator.Name(req.Name); err != nil {
		fields["name"] = err.Error()
	}
	if err := validator.Email(req.Email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validator.Role(req.Role); err != nil {
		fields["role"] = err.Error()
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	created, err := h.users.Create(c.Request().Context(), user.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Image: req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(created))
}

func (h *UserHandler) Get(c echo.Context) error {
	found, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(found))
}

func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if req.Name != nil {
		if err := validator.Name(*req.Name); err != nil {
			fields["name"] = err.Error()
		}
	}
	if req.Email != nil {
		if err := validator.Email(*req.Email); err != nil {
			fields["email"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	updated, err := h.users.Update(c.Request().Context(), c.Param("id"), user.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "user deleted")
}

func (h *UserHandler) ToggleActive(c echo.Context) error {
	updated, err := h.users.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateUserRoleRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if err := validator.Role(req.Role); err != nil {
		return respondValidationErrors(c, map[string]string{"role": err.Error()})
	}

	updated, err := h.users.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/user"
	"personacast/internal/domain/variable"
	"personacast/internal/http/middleware"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

type VariableHandler struct {
	variables *service.VariableService
}

func NewVariableHandler(variables *service.VariableService) *VariableHandler {
	return &VariableHandler{variables: variables}
}

type CreateVariableRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpdateVariableRequest struct {
	Value *string `json:"value,omitempty"`
}

type VariableResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VariableValueResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *VariableHandler) List(c echo.Context) error {
	variables, err := h.variables.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]VariableResponse, 0, len(variables))
	for i := range variables {
		out = append(out, toVariableResponse(&variables[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VariableHandler) Create(c echo.Context) error {
	var req CreateVariableRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if err := validator.VariableName(req.Name); err != nil {
		return respondValidationErrors(c, map[string]string{"name": err.Error()})
	}

	created, err := h.variables.Create(c.Request().Context(), variable.CreateVariableInput{
		Name:  req.Name,
		Value: req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVariableResponse(created))
}

func (h *VariableHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	found, err := h.variables.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVariableResponse(found))
}

func (h *VariableHandler) GetByName(c echo.Context) error {
	found, err := h.variables.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVariableResponse(found))
}

// Value serves variable values to the public site. The debug-controls
// flag reads as "false" for anyone but an admin regardless of the
// stored value.
func (h *VariableHandler) Value(c echo.Context) error {
	name := c.Param("name")

	if name == variable.NameShowDebugControls && middleware.Role(c) != user.RoleAdmin {
		return c.JSON(http.StatusOK, VariableValueResponse{Name: name, Value: "false"})
	}

	found, err := h.variables.GetByName(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, VariableValueResponse{Name: found.Name, Value: found.Value})
}

func (h *VariableHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req UpdateVariableRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	updated, err := h.variables.Update(c.Request().Context(), id, variable.UpdateVariableInput{
		Value: req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVariableResponse(updated))
}

func (h *VariableHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.variables.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "variable deleted")
}

func toVariableResponse(v *variable.Variable) VariableResponse {
	return VariableResponse{
		ID:        v.ID,
		Name:      v.Name,
		Value:     v.Value,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/menuitem"
	"personacast/internal/service"
	"personacast/pkg/validator"
)

type MenuItemHandler struct {
	items *service.MenuItemService
}

func NewMenuItemHandler(items *service.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{items: items}
}

type CreateMenuItemRequest struct {
	Label         string   `json:"label"`
	Href          string   `json:"href"`
	Position      int      `json:"position"`
	ParentID      *int64   `json:"parentId,omitempty"`
	RequiredRoles []string `json:"requiredRoles,omitempty"`
}

type UpdateMenuItemRequest struct {
	Label         *string   `json:"label,omitempty"`
	Href          *string   `json:"href,omitempty"`
	Position      *int      `json:"position,omitempty"`
	ParentID      *int64    `json:"parentId,omitempty"`
	RequiredRoles *[]string `json:"requiredRoles,omitempty"`
}

type MenuItemMoveRequest struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	ParentID *int64 `json:"parentId,omitempty"`
}

type ReorderMenuRequest struct {
	Moves []MenuItemMoveRequest `json:"moves"`
}

type MenuItemResponse struct {
	ID            int64     `json:"id"`
	Label         string    `json:"label"`
	Href          string    `json:"href"`
	Position      int       `json:"position"`
	ParentID      *int64    `json:"parentId,omitempty"`
	RequiredRoles []string  `json:"requiredRoles"`
	IsSystem      bool      `json:"isSystem"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (h *MenuItemHandler) List(c echo.Context) error {
	items, err := h.items.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MenuItemHandler) Create(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := validateMenuItemFields(req.Label, req.Href, req.Position, req.RequiredRoles)
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	created, err := h.items.Create(c.Request().Context(), menuitem.CreateMenuItemInput{
		Label:         req.Label,
		Href:          req.Href,
		Position:      req.Position,
		ParentID:      req.ParentID,
		RequiredRoles: req.RequiredRoles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMenuItemResponse(created))
}

func (h *MenuItemHandler) Get(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	found, err := h.items.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(found))
}

func (h *MenuItemHandler) Update(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	var req UpdateMenuItemRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}

	fields := map[string]string{}
	if req.Label != nil {
		if err := validator.MenuLabel(*req.Label); err != nil {
			fields["label"] = err.Error()
		}
	}
	if req.Href != nil {
		if err := validator.MenuHref(*req.Href); err != nil {
			fields["href"] = err.Error()
		}
	}
	if req.Position != nil {
		if err := validator.Position(*req.Position); err != nil {
			fields["position"] = err.Error()
		}
	}
	if req.RequiredRoles != nil {
		for _, role := range *req.RequiredRoles {
			if err := validator.Role(role); err != nil {
				fields["requiredRoles"] = err.Error()
				break
			}
		}
	}
	if len(fields) > 0 {
		return respondValidationErrors(c, fields)
	}

	updated, err := h.items.Update(c.Request().Context(), id, menuitem.UpdateMenuItemInput{
		Label:         req.Label,
		Href:          req.Href,
		Position:      req.Position,
		ParentID:      req.ParentID,
		RequiredRoles: req.RequiredRoles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(updated))
}

func (h *MenuItemHandler) Delete(c echo.Context) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "menu item deleted")
}

func (h *MenuItemHandler) Reorder(c echo.Context) error {
	var req ReorderMenuRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return err
	}
	if len(req.Moves) == 0 {
		return respondValidationErrors(c, map[string]string{"moves": "at least one move is required"})
	}

	moves := make([]menuitem.Move, 0, len(req.Moves))
	for _, m := range req.Moves {
		if err := validator.Position(m.Position); err != nil {
			return respondValidationErrors(c, map[string]string{"moves": err.Error()})
		}
		moves = append(moves, menuitem.Move{ID: m.ID, Position: m.Position, ParentID: m.ParentID})
	}

	if err := h.items.Reorder(c.Request().Context(), moves); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "menu reordered")
}

func validateMenuItemFields(label, href string, position int, roles []string) map[string]string {
	fields := map[string]string{}
	if err := validator.MenuLabel(label); err != nil {
		fields["label"] = err.Error()
	}
	if err := validator.MenuHref(href); err != nil {
		fields["href"] = err.Error()
	}
	if err := validator.Position(position); err != nil {
		fields["position"] = err.Error()
	}
	for _, role := range roles {
		if err := validator.Role(role); err != nil {
			fields["requiredRoles"] = err.Error()
			break
		}
	}
	return fields
}

func toMenuItemResponse(m *menuitem.MenuItem) MenuItemResponse {
	roles := m.RequiredRoles
	if roles == nil {
		roles = []string{}
	}
	return MenuItemResponse{
		ID:            m.ID,
		Label:         m.Label,
		Href:          m.Href,
		Position:      m.Position,
		ParentID:      m.ParentID,
		RequiredRoles: roles,
		IsSystem:      m.IsSystem,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

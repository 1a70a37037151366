package service

import (
	"context"

	"personacast/internal/domain/menuitem"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

// maxMenuDepth bounds parent-chain walks; a well-formed menu tree is
// far shallower than this.
const maxMenuDepth = 32

type MenuItemService struct {
	CRUD[menuitem.MenuItem, int64, menuitem.CreateMenuItemInput, menuitem.UpdateMenuItemInput]
	repo repository.MenuItemRepository
}

func NewMenuItemService(repo repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{
		CRUD: NewCRUD[menuitem.MenuItem, int64, menuitem.CreateMenuItemInput, menuitem.UpdateMenuItemInput](repo),
		repo: repo,
	}
}

// Update validates that a parent change keeps the tree acyclic before
// writing.
func (s *MenuItemService) Update(ctx context.Context, id int64, input menuitem.UpdateMenuItemInput) (*menuitem.MenuItem, error) {
	if input.ParentID != nil {
		if err := s.checkAcyclic(ctx, []menuitem.Move{{ID: id, ParentID: input.ParentID}}); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, input)
}

// Delete refuses to remove system items.
func (s *MenuItemService) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.IsSystem {
		return apperrors.Forbidden("system menu items cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

// Reorder validates the whole batch for unknown ids and cycles, then
// applies it atomically.
func (s *MenuItemService) Reorder(ctx context.Context, moves []menuitem.Move) error {
	if len(moves) == 0 {
		return nil
	}
	if err := s.checkAcyclic(ctx, moves); err != nil {
		return err
	}
	return s.repo.Reorder(ctx, moves)
}

// checkAcyclic applies the moves to an in-memory copy of the tree and
// walks each moved node's parent chain. A chain that revisits a node or
// exceeds the depth bound rejects the batch.
func (s *MenuItemService) checkAcyclic(ctx context.Context, moves []menuitem.Move) error {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	parents := make(map[int64]*int64, len(items))
	for i := range items {
		parents[items[i].ID] = items[i].ParentID
	}

	for _, move := range moves {
		if _, ok := parents[move.ID]; !ok {
			return apperrors.NotFound("menu item not found")
		}
		if move.ParentID != nil {
			if _, ok := parents[*move.ParentID]; !ok {
				return apperrors.BadRequest("parent menu item not found")
			}
		}
		parents[move.ID] = move.ParentID
	}

	for _, move := range moves {
		seen := map[int64]bool{}
		current := parents[move.ID]
		depth := 0
		for current != nil {
			if *current == move.ID || seen[*current] {
				return apperrors.BadRequest("menu item parent chain forms a cycle")
			}
			if depth++; depth > maxMenuDepth {
				return apperrors.BadRequest("menu item parent chain too deep")
			}
			seen[*current] = true
			current = parents[*current]
		}
	}

	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personacast/internal/domain/menuitem"
	apperrors "personacast/pkg/errors"
)

func seedMenu(t *testing.T, svc *MenuItemService, label string, parentID *int64) *menuitem.MenuItem {
	t.Helper()

	item, err := svc.Create(context.Background(), menuitem.CreateMenuItemInput{
		Label: label,
		Href:  "/" + label,
	})
	require.NoError(t, err)

	if parentID != nil {
		item, err = svc.Update(context.Background(), item.ID, menuitem.UpdateMenuItemInput{ParentID: parentID})
		require.NoError(t, err)
	}
	return item
}

func TestMenuItemService_Delete_RefusesSystemItems(t *testing.T) {
	repo := newFakeMenuItemRepo()
	svc := NewMenuItemService(repo)
	ctx := context.Background()

	item, err := repo.Create(ctx, menuitem.CreateMenuItemInput{Label: "Home", Href: "/", IsSystem: true})
	require.NoError(t, err)

	err = svc.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Still present.
	_, err = svc.GetByID(ctx, item.ID)
	assert.NoError(t, err)
}

func TestMenuItemService_Update_RejectsSelfParent(t *testing.T) {
	svc := NewMenuItemService(newFakeMenuItemRepo())
	item := seedMenu(t, svc, "about", nil)

	_, err := svc.Update(context.Background(), item.ID, menuitem.UpdateMenuItemInput{ParentID: &item.ID})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestMenuItemService_Update_RejectsCycle(t *testing.T) {
	svc := NewMenuItemService(newFakeMenuItemRepo())
	ctx := context.Background()

	root := seedMenu(t, svc, "root", nil)
	child := seedMenu(t, svc, "child", &root.ID)
	grandchild := seedMenu(t, svc, "grandchild", &child.ID)

	// Rooting the top under its own grandchild would close a loop.
	_, err := svc.Update(ctx, root.ID, menuitem.UpdateMenuItemInput{ParentID: &grandchild.ID})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestMenuItemService_Reorder(t *testing.T) {
	svc := NewMenuItemService(newFakeMenuItemRepo())
	ctx := context.Background()

	a := seedMenu(t, svc, "a", nil)
	b := seedMenu(t, svc, "b", nil)

	err := svc.Reorder(ctx, []menuitem.Move{
		{ID: a.ID, Position: 1},
		{ID: b.ID, Position: 0},
	})
	require.NoError(t, err)

	moved, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)
}

func TestMenuItemService_Reorder_RejectsUnknownItem(t *testing.T) {
	svc := NewMenuItemService(newFakeMenuItemRepo())

	err := svc.Reorder(context.Background(), []menuitem.Move{{ID: 42, Position: 0}})
	assert.Error(t, err)
}

func TestMenuItemService_Reorder_RejectsCycleWithinBatch(t *testing.T) {
	svc := NewMenuItemService(newFakeMenuItemRepo())
	ctx := context.Background()

	a := seedMenu(t, svc, "a", nil)
	b := seedMenu(t, svc, "b", nil)

	// a under b and b under a in the same batch.
	err := svc.Reorder(ctx, []menuitem.Move{
		{ID: a.ID, Position: 0, ParentID: &b.ID},
		{ID: b.ID, Position: 0, ParentID: &a.ID},
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/models"
	"github.com/emrekoca/recipebox/internal/repository/memory"
	"github.com/emrekoca/recipebox/internal/worker"
)

const (
	owner    = int64(1)
	stranger = int64(2)
)

func newRecipeService(t *testing.T) (*RecipeService, *worker.Pool) {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	return NewRecipeService(repos.Recipes, repos.AuditLogs, wp), wp
}

func sample() models.Recipe {
	return models.Recipe{Title: "Menemen", Ingredients: "eggs, tomatoes", Instructions: "cook"}
}

func strptr(s string) *string { return &s }

func TestRecipeCreate(t *testing.T) {
	svc, wp := newRecipeService(t)
	defer wp.Stop()
	ctx := context.Background()

	rec, err := svc.Create(ctx, owner, sample())
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, owner, rec.OwnerID)

	_, err = svc.Create(ctx, owner, models.Recipe{Title: "only a title"})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestRecipeListScopedToOwner(t *testing.T) {
	svc, wp := newRecipeService(t)
	defer wp.Stop()
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, sample())
	require.NoError(t, err)
	_, err = svc.Create(ctx, stranger, sample())
	require.NoError(t, err)

	list, err := svc.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, owner, list[0].OwnerID)
}

func TestRecipeOwnershipPolicy(t *testing.T) {
	svc, wp := newRecipeService(t)
	defer wp.Stop()
	ctx := context.Background()

	rec, err := svc.Create(ctx, owner, sample())
	require.NoError(t, err)

	// absent resource
	_, err = svc.Get(ctx, 9999, owner)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	// someone else's resource, on every operation
	_, err = svc.Get(ctx, rec.ID, stranger)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	_, err = svc.Update(ctx, rec.ID, stranger, RecipePatch{Title: strptr("hijacked")})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	err = svc.Delete(ctx, rec.ID, stranger)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	// nothing changed
	got, err := svc.Get(ctx, rec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Menemen", got.Title)
}

func TestRecipePartialUpdate(t *testing.T) {
	svc, wp := newRecipeService(t)
	defer wp.Stop()
	ctx := context.Background()

	rec, err := svc.Create(ctx, owner, sample())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, owner, RecipePatch{Category: strptr("Dinner")})
	require.NoError(t, err)
	assert.Equal(t, "Dinner", updated.Category)
	assert.Equal(t, rec.Title, updated.Title)
	assert.Equal(t, rec.Ingredients, updated.Ingredients)
	assert.Equal(t, rec.Instructions, updated.Instructions)

	// clearing a required field is rejected
	_, err = svc.Update(ctx, rec.ID, owner, RecipePatch{Title: strptr("")})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestRecipeDelete(t *testing.T) {
	svc, wp := newRecipeService(t)
	defer wp.Stop()
	ctx := context.Background()

	rec, err := svc.Create(ctx, owner, sample())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID, owner))

	_, err = svc.Get(ctx, rec.ID, owner)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, rec.ID, owner)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

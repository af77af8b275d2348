package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/metrics"
	"github.com/emrekoca/recipebox/internal/models"
	repo "github.com/emrekoca/recipebox/internal/repository"
	"github.com/emrekoca/recipebox/internal/worker"
)

type RecipeService struct {
	recipes repo.Recipes
	audit   repo.AuditLogs
	wp      *worker.Pool
}

func NewRecipeService(recipes repo.Recipes, audit repo.AuditLogs, wp *worker.Pool) *RecipeService {
	return &RecipeService{recipes: recipes, audit: audit, wp: wp}
}

// RecipePatch carries a partial update. Nil means "leave unchanged"; a
// present empty string is a validation error for required fields.
type RecipePatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	Category     *string `json:"category"`
}

func (s *RecipeService) Create(ctx context.Context, ownerID int64, rec models.Recipe) (models.Recipe, error) {
	rec.OwnerID = ownerID
	if err := rec.Validate(); err != nil {
		return models.Recipe{}, err
	}
	created, err := s.recipes.Create(ctx, rec)
	if err != nil {
		return models.Recipe{}, err
	}
	metrics.RecipesCreatedTotal.Inc()
	return created, nil
}

func (s *RecipeService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ctx, ownerID)
}

func (s *RecipeService) Get(ctx context.Context, id, callerID int64) (models.Recipe, error) {
	return s.authorize(ctx, id, callerID)
}

func (s *RecipeService) Update(ctx context.Context, id, callerID int64, patch RecipePatch) (models.Recipe, error) {
	rec, err := s.authorize(ctx, id, callerID)
	if err != nil {
		return models.Recipe{}, err
	}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	if patch.Ingredients != nil {
		rec.Ingredients = *patch.Ingredients
	}
	if patch.Instructions != nil {
		rec.Instructions = *patch.Instructions
	}
	if patch.Category != nil {
		rec.Category = *patch.Category
	}
	if err := rec.Validate(); err != nil {
		return models.Recipe{}, err
	}
	return s.recipes.Update(ctx, rec)
}

func (s *RecipeService) Delete(ctx context.Context, id, callerID int64) error {
	if _, err := s.authorize(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecipesDeletedTotal.Inc()
	s.record(callerID, "recipe_delete", id)
	return nil
}

// authorize loads the recipe and enforces the ownership policy: absent is
// NotFound, someone else's is Forbidden.
func (s *RecipeService) authorize(ctx context.Context, id, callerID int64) (models.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return models.Recipe{}, err
	}
	if rec.OwnerID != callerID {
		return models.Recipe{}, apperr.New(apperr.Forbidden, "You do not own this recipe")
	}
	return rec, nil
}

func (s *RecipeService) record(userID int64, action string, recipeID int64) {
	if s.audit == nil || s.wp == nil {
		return
	}
	s.wp.Submit(func() {
		l := models.AuditLog{UserID: userID, Action: action, Detail: "recipe:" + strconv.FormatInt(recipeID, 10)}
		if err := s.audit.Create(context.Background(), l); err != nil {
			slog.Warn("audit write failed", "action", action, "err", err)
		}
	})
}

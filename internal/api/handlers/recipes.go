package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emrekoca/recipebox/internal/api/httpx"
	"github.com/emrekoca/recipebox/internal/middleware"
	"github.com/emrekoca/recipebox/internal/models"
	"github.com/emrekoca/recipebox/internal/services"
)

type RecipeHandler struct {
	Recipes *services.RecipeService
}

func NewRecipeHandler(rs *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{Recipes: rs}
}

func identity(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid or missing token")
	}
	return uid, ok
}

func recipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Recipe not found")
		return 0, false
	}
	return id, true
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := identity(w, r)
	if !ok {
		return
	}
	recipes, err := h.Recipes.ListByOwner(r.Context(), uid)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, recipes)
}

type createRecipeReq struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Category     string `json:"category"`
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := identity(w, r)
	if !ok {
		return
	}
	var req createRecipeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	rec, err := h.Recipes.Create(r.Context(), uid, models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Category:     req.Category,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rec)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := recipeID(w, r)
	if !ok {
		return
	}
	rec, err := h.Recipes.Get(r.Context(), id, uid)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := recipeID(w, r)
	if !ok {
		return
	}
	var patch services.RecipePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec, err := h.Recipes.Update(r.Context(), id, uid, patch)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := recipeID(w, r)
	if !ok {
		return
	}
	if err := h.Recipes.Delete(r.Context(), id, uid); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Recipe deleted"})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "mealshare/internal/log"
	"mealshare/internal/recipes"
	"mealshare/internal/views/layout"
	"mealshare/internal/views/pages"
)

// AddRecipe serves the creation form on GET and creates the recipe on POST.
func (h *Handlers) AddRecipe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderRecipeForm(w, r)
	case http.MethodPost:
		h.createRecipe(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) renderRecipeForm(w http.ResponseWriter, r *http.Request, extra ...layout.Flash) {
	users, err := h.store.Users(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to load users", "error", err)
		h.ServerError(w, r)
		return
	}
	tags, err := h.store.Tags(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to load tags", "error", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "Add a recipe", pages.AddRecipe(pages.AddRecipeData{Users: users, Tags: tags}), extra...)
}

func (h *Handlers) createRecipe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "invalid recipe form", "error", err)
		h.renderRecipeForm(w, r, layout.Flash{Category: layout.FlashError, Message: msgGenericFailure})
		return
	}

	id, err := h.store.CreateRecipe(r.Context(), recipeFromForm(r))
	switch {
	case errors.Is(err, recipes.ErrInvalidRecipe), errors.Is(err, recipes.ErrUnknownAuthor):
		applog.Debug(r.Context(), "rejected recipe", "error", err)
		h.renderRecipeForm(w, r, layout.Flash{Category: layout.FlashError, Message: notice(err)})
		return
	case err != nil:
		applog.Error(r.Context(), "failed to create recipe", "error", err)
		h.ServerError(w, r)
		return
	}

	applog.Info(r.Context(), "recipe created", "recipe_id", id)
	h.flash(r, layout.FlashSuccess, msgRecipeAdded)
	http.Redirect(w, r, recipePath(id), http.StatusSeeOther)
}

// recipeFromForm reads the creation form. Numbers that do not parse are
// treated as absent and tag ids that do not parse are skipped.
func recipeFromForm(r *http.Request) recipes.NewRecipe {
	form := r.PostForm
	in := recipes.NewRecipe{
		Name:            form.Get("name"),
		Instructions:    form.Get("instructions"),
		ImageURL:        form.Get("image_url"),
		ImageAlt:        form.Get("image_alt"),
		IngredientsText: form.Get("ingredients_text"),
	}
	if v, err := strconv.Atoi(strings.TrimSpace(form.Get("prep_time"))); err == nil {
		in.PrepTimeMinutes = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(form.Get("cost_estimate")), 64); err == nil {
		in.CostEstimate = &v
	}
	if v, err := strconv.ParseUint(strings.TrimSpace(form.Get("author_id")), 10, 0); err == nil {
		author := uint(v)
		in.AuthorID = &author
	}
	for _, raw := range form["tags"] {
		v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
		if err != nil {
			continue
		}
		in.TagIDs = append(in.TagIDs, uint(v))
	}
	return in
}

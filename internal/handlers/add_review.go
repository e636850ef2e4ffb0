package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "mealshare/internal/log"
	"mealshare/internal/recipes"
	"mealshare/internal/views/layout"
)

// AddReview records a review and always redirects back to the recipe page,
// which sends the visitor on to the listing when the recipe does not exist.
func (h *Handlers) AddReview(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathID(r, "recipe_id")
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "invalid review form", "error", err)
		h.flash(r, layout.FlashError, msgGenericFailure)
		http.Redirect(w, r, recipePath(recipeID), http.StatusSeeOther)
		return
	}

	in := recipes.NewReview{RecipeID: recipeID, Comment: r.PostForm.Get("comment")}
	if v, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("rating"))); err == nil {
		in.Rating = v
	}
	if v, err := strconv.ParseUint(strings.TrimSpace(r.PostForm.Get("user_id")), 10, 0); err == nil {
		in.UserID = uint(v)
	}

	err := h.store.CreateReview(r.Context(), in)
	switch {
	case errors.Is(err, recipes.ErrRecipeNotFound):
		applog.Debug(r.Context(), "review for unknown recipe", "recipe_id", recipeID)
		h.flash(r, layout.FlashError, notice(err))
	case errors.Is(err, recipes.ErrInvalidRating), errors.Is(err, recipes.ErrMissingReviewer):
		applog.Debug(r.Context(), "rejected review", "recipe_id", recipeID, "error", err)
		h.flash(r, layout.FlashError, notice(err))
	case err != nil:
		applog.Error(r.Context(), "failed to create review", "recipe_id", recipeID, "error", err)
		h.ServerError(w, r)
		return
	default:
		h.flash(r, layout.FlashSuccess, msgReviewAdded)
	}
	http.Redirect(w, r, recipePath(recipeID), http.StatusSeeOther)
}

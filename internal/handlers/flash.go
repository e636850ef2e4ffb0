package handlers

import (
	"errors"
	"net/http"

	"mealshare/internal/recipes"
	"mealshare/internal/views/layout"
)

const (
	sessionFlashErrorKey   = "flash:error"
	sessionFlashSuccessKey = "flash:success"
)

const (
	msgRecipeAdded     = "Recipe added successfully!"
	msgReviewAdded     = "Review added successfully!"
	msgRecipeNotFound  = "Recipe not found"
	msgInvalidRecipe   = "Name and instructions are required"
	msgUnknownAuthor   = "The selected author does not exist"
	msgInvalidRating   = "Please provide a valid rating (1-5)"
	msgMissingReviewer = "Please select who is leaving the review."
	msgGenericFailure  = "Something went wrong. Please try again."
)

func (h *Handlers) flash(r *http.Request, category, message string) {
	if h.sessions == nil {
		return
	}
	key := sessionFlashSuccessKey
	if category == layout.FlashError {
		key = sessionFlashErrorKey
	}
	h.sessions.Put(r.Context(), key, message)
}

func (h *Handlers) popFlashes(r *http.Request) []layout.Flash {
	if h.sessions == nil {
		return nil
	}
	var flashes []layout.Flash
	if msg := h.sessions.PopString(r.Context(), sessionFlashErrorKey); msg != "" {
		flashes = append(flashes, layout.Flash{Category: layout.FlashError, Message: msg})
	}
	if msg := h.sessions.PopString(r.Context(), sessionFlashSuccessKey); msg != "" {
		flashes = append(flashes, layout.Flash{Category: layout.FlashSuccess, Message: msg})
	}
	return flashes
}

// notice maps a store validation error to the message shown to the user.
func notice(err error) string {
	switch {
	case errors.Is(err, recipes.ErrRecipeNotFound):
		return msgRecipeNotFound
	case errors.Is(err, recipes.ErrInvalidRecipe):
		return msgInvalidRecipe
	case errors.Is(err, recipes.ErrUnknownAuthor):
		return msgUnknownAuthor
	case errors.Is(err, recipes.ErrInvalidRating):
		return msgInvalidRating
	case errors.Is(err, recipes.ErrMissingReviewer):
		return msgMissingReviewer
	default:
		return msgGenericFailure
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	applog "mealshare/internal/log"
	"mealshare/internal/recipes"
	"mealshare/internal/views/layout"
	"mealshare/internal/views/pages"
)

// Index lists every recipe without filters.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context(), recipes.Filter{})
	if err != nil {
		applog.Error(r.Context(), "failed to list recipes", "error", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "All recipes", pages.Index(list))
}

// Browse lists recipes narrowed by the tag, max_prep_time and ingredient
// query parameters and echoes them back in the filter form.
func (h *Handlers) Browse(w http.ResponseWriter, r *http.Request) {
	filters := pages.BrowseFiltersFromRequest(r)
	filter := filters.Filter()
	applog.Debug(r.Context(), "browsing recipes", "tag", filter.Tag, "ingredient", filter.Ingredient, "max_prep_time", filters.MaxPrepTime)

	list, err := h.store.List(r.Context(), filter)
	if err != nil {
		applog.Error(r.Context(), "failed to filter recipes", "error", err)
		h.ServerError(w, r)
		return
	}
	tags, err := h.store.TagNames(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to load tag names", "error", err)
		h.ServerError(w, r)
		return
	}

	h.render(w, r, http.StatusOK, "Browse", pages.Browse(pages.BrowseData{
		Recipes: list,
		Tags:    tags,
		Filters: filters,
	}))
}

// RecipeDetail shows one recipe. An unknown id redirects to the listing with
// an error notice.
func (h *Handlers) RecipeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.NotFound(w, r)
		return
	}

	detail, err := h.store.Detail(r.Context(), id)
	if errors.Is(err, recipes.ErrRecipeNotFound) {
		applog.Debug(r.Context(), "recipe not found", "recipe_id", id)
		h.flash(r, layout.FlashError, notice(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load recipe", "recipe_id", id, "error", err)
		h.ServerError(w, r)
		return
	}

	h.render(w, r, http.StatusOK, detail.Recipe.Name, pages.Detail(detail))
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func recipePath(id uint) string {
	return "/recipe/" + strconv.FormatUint(uint64(id), 10)
}

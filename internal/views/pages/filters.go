package pages

import (
	"net/http"
	"strconv"
	"strings"

	"mealshare/internal/recipes"
)

// BrowseFilters capture the query string of the browse page as entered, so
// the form can show it again.
type BrowseFilters struct {
	Tag         string
	MaxPrepTime string
	Ingredient  string
}

// BrowseFiltersFromRequest extracts the tag, max_prep_time and ingredient
// query parameters.
func BrowseFiltersFromRequest(r *http.Request) BrowseFilters {
	query := r.URL.Query()
	return BrowseFilters{
		Tag:         strings.TrimSpace(query.Get("tag")),
		MaxPrepTime: strings.TrimSpace(query.Get("max_prep_time")),
		Ingredient:  strings.TrimSpace(query.Get("ingredient")),
	}
}

// Filter converts the form state into a listing filter. A max prep time that
// is not an integer is ignored.
func (f BrowseFilters) Filter() recipes.Filter {
	filter := recipes.Filter{Tag: f.Tag, Ingredient: f.Ingredient}
	if f.MaxPrepTime != "" {
		if minutes, err := strconv.Atoi(f.MaxPrepTime); err == nil {
			filter.MaxPrepTime = &minutes
		}
	}
	return filter
}

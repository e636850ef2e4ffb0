package server

import (
	"context"
	"net/http"

	"mealshare/internal/handlers"
	applog "mealshare/internal/log"
)

func newRouter(h *handlers.Handlers) http.Handler {
	mux := http.NewServeMux()
	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{"GET /{$}", h.Index},
		{"GET /recipes", h.Browse},
		{"GET /recipe/{id}", h.RecipeDetail},
		{"GET /add_recipe", h.AddRecipe},
		{"POST /add_recipe", h.AddRecipe},
		{"POST /add_review/{recipe_id}", h.AddReview},
		{"GET /healthz", h.Health},
		{"/", h.NotFound},
	}
	for _, route := range routes {
		mux.HandleFunc(route.pattern, route.handler)
		applog.Debug(context.Background(), "route registered", "pattern", route.pattern)
	}
	return mux
}

// Package handlers translates HTTP requests into recipe store calls and renders
// the resulting pages.
package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"

	applog "mealshare/internal/log"
	"mealshare/internal/recipes"
	"mealshare/internal/views/layout"
	"mealshare/internal/views/pages"
	"mealshare/models"
)

// RecipeStore is the storage surface the handlers need. *recipes.Store
// satisfies it.
type RecipeStore interface {
	List(ctx context.Context, filter recipes.Filter) ([]recipes.Summary, error)
	Detail(ctx context.Context, id uint) (*recipes.Detail, error)
	CreateRecipe(ctx context.Context, in recipes.NewRecipe) (uint, error)
	CreateReview(ctx context.Context, in recipes.NewReview) error
	Users(ctx context.Context) ([]models.User, error)
	Tags(ctx context.Context) ([]models.DietaryTag, error)
	TagNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Handlers holds the dependencies shared by every route.
type Handlers struct {
	store    RecipeStore
	sessions *scs.SessionManager
}

// New builds the handler set. sessions may be nil, in which case flash
// notices are dropped.
func New(store RecipeStore, sessions *scs.SessionManager) *Handlers {
	return &Handlers{store: store, sessions: sessions}
}

// render buffers the full page before writing so a template failure can still
// turn into the fault page.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, title string, content templ.Component, extra ...layout.Flash) {
	flashes := append(h.popFlashes(r), extra...)

	var buf bytes.Buffer
	if err := layout.Page(title, flashes, content).Render(r.Context(), &buf); err != nil {
		applog.Error(r.Context(), "failed to render page", "title", title, "error", err)
		h.ServerError(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the missing-page body with status 404.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "no route matched", "path", r.URL.Path)
	h.render(w, r, http.StatusNotFound, "Not found", pages.NotFound())
}

// ServerError renders the fault page with status 500. It never touches the
// session so it is safe to call after a panic.
func (h *Handlers) ServerError(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := layout.Page("Error", nil, pages.ServerError()).Render(r.Context(), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

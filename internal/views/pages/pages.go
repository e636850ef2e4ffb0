// Package pages holds the page bodies rendered inside layout.Page.
package pages

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"mealshare/internal/recipes"
	"mealshare/models"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"minutes":  formatMinutes,
	"cost":     formatCost,
	"rating":   formatRating,
	"stars":    stars,
	"str":      deref,
	"date":     formatDate,
	"excerpt":  excerpt,
	"selected": func(current, option string) bool { return current == option },
}).ParseFS(files, "templates/*.html"))

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Index lists every recipe.
func Index(list []recipes.Summary) templ.Component {
	return render("index.html", struct{ Recipes []recipes.Summary }{list})
}

// BrowseData is the filtered listing together with the filter form state.
type BrowseData struct {
	Recipes []recipes.Summary
	Tags    []string
	Filters BrowseFilters
}

// Browse renders the filter form and its results.
func Browse(data BrowseData) templ.Component {
	return render("browse.html", data)
}

// Detail renders a single recipe with its images, ingredients, reviews and the
// review form.
func Detail(detail *recipes.Detail) templ.Component {
	return render("detail.html", detail)
}

// AddRecipeData is the reference data the creation form offers.
type AddRecipeData struct {
	Users []models.User
	Tags  []models.DietaryTag
}

// AddRecipe renders the empty recipe creation form.
func AddRecipe(data AddRecipeData) templ.Component {
	return render("add_recipe.html", data)
}

// NotFound renders the generic missing-page body.
func NotFound() templ.Component {
	return render("404.html", nil)
}

// ServerError renders the generic fault body.
func ServerError() templ.Component {
	return render("500.html", nil)
}

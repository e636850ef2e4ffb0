package pages

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"mealshare/internal/recipes"
	"mealshare/models"
)

func renderString(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestIndexRendersRecipeCards(t *testing.T) {
	prep := 30
	avg := 4.5
	out := renderString(t, Index([]recipes.Summary{{
		ID:              7,
		Name:            "Vegetarian Bowl",
		Instructions:    "Combine everything.",
		PrepTimeMinutes: &prep,
		ImageURL:        strPtr("https://example.com/bowl.jpg"),
		ImageAlt:        strPtr("A bowl"),
		AvgRating:       &avg,
		ReviewCount:     2,
		TagList:         "gluten-free,vegetarian",
		AuthorName:      strPtr("Bob Smith"),
	}}))

	assertContains(t, out,
		`href="/recipe/7"`,
		"Vegetarian Bowl",
		"30 min",
		"4.5 / 5",
		"(2 reviews)",
		`<span class="tag">gluten-free</span>`,
		`<span class="tag">vegetarian</span>`,
		`alt="A bowl"`,
		"By Bob Smith",
	)
}

func TestIndexRendersEmptyState(t *testing.T) {
	assertContains(t, renderString(t, Index(nil)), "No recipes found.")
}

func TestBrowseEchoesFilters(t *testing.T) {
	out := renderString(t, Browse(BrowseData{
		Tags:    []string{"spicy", "vegan"},
		Filters: BrowseFilters{Tag: "vegan", MaxPrepTime: "20", Ingredient: "rice"},
	}))

	assertContains(t, out,
		`<option value="vegan" selected>vegan</option>`,
		`<option value="spicy">spicy</option>`,
		`name="max_prep_time" min="0" value="20"`,
		`name="ingredient" value="rice"`,
	)
}

func TestDetailRendersReviewForm(t *testing.T) {
	cost := 12.5
	out := renderString(t, Detail(&recipes.Detail{
		Recipe: recipes.RecipeRow{ID: 3, Name: "Margherita Pizza", Instructions: "Bake.", CostEstimate: &cost},
		Images: []models.Image{{FilePath: "/static/pizza.jpg", AltText: "Pizza"}},
		Reviews: []recipes.ReviewRow{
			{Rating: 4, Comment: "Lovely", ReviewerName: strPtr("Alice"), CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Rating: 2},
		},
		Ingredients: []recipes.IngredientLine{{Name: "Flour", Quantity: "500 g"}, {Name: "Basil"}},
		Users:       []models.User{{ID: 1, Name: "Alice"}},
	}))

	assertContains(t, out,
		"<h1>Margherita Pizza</h1>",
		"$12.50",
		`src="/static/pizza.jpg"`,
		"<li>Flour - 500 g</li>",
		"<li>Basil</li>",
		"★★★★☆",
		"Alice · Mar 1, 2024",
		"Former member",
		`action="/add_review/3"`,
		`<option value="1">Alice</option>`,
	)
}

func TestAddRecipeListsReferenceData(t *testing.T) {
	out := renderString(t, AddRecipe(AddRecipeData{
		Users: []models.User{{ID: 2, Name: "Bob Smith"}},
		Tags:  []models.DietaryTag{{ID: 5, TagName: "keto"}},
	}))

	assertContains(t, out,
		`<option value="2">Bob Smith</option>`,
		`name="tags" value="5"`,
		"keto",
		`name="ingredients_text"`,
	)
}

func TestErrorPagesAreDistinct(t *testing.T) {
	notFound := renderString(t, NotFound())
	serverError := renderString(t, ServerError())
	if notFound == serverError {
		t.Fatal("expected distinct error pages")
	}
	assertContains(t, notFound, "Page not found")
	assertContains(t, serverError, "Something went wrong")
}

func TestBrowseFiltersFromRequest(t *testing.T) {
	tests := []struct {
		query   string
		tag     string
		maxPrep *int
		ing     string
	}{
		{"", "", nil, ""},
		{"?tag=+vegan+&max_prep_time=30&ingredient=Rice", "vegan", intPtr(30), "Rice"},
		{"?max_prep_time=soon", "", nil, ""},
		{"?max_prep_time=", "", nil, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/recipes"+tt.query, nil)
			filter := BrowseFiltersFromRequest(req).Filter()
			if filter.Tag != tt.tag || filter.Ingredient != tt.ing {
				t.Fatalf("unexpected filter %+v", filter)
			}
			if (filter.MaxPrepTime == nil) != (tt.maxPrep == nil) {
				t.Fatalf("MaxPrepTime = %v, want %v", filter.MaxPrepTime, tt.maxPrep)
			}
			if tt.maxPrep != nil && *filter.MaxPrepTime != *tt.maxPrep {
				t.Fatalf("MaxPrepTime = %d, want %d", *filter.MaxPrepTime, *tt.maxPrep)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

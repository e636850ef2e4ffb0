package recipes

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"mealshare/internal/db/mock"
	"mealshare/models"
)

type listFixture struct {
	store   *Store
	db      *gorm.DB
	recipes map[string]uint
	tags    map[string]uint
}

// newListFixture builds recipes that stress every one-to-many relation at
// once: several images, tags and ingredients on the same recipe.
func newListFixture(t *testing.T) listFixture {
	t.Helper()
	store, database := newTestStore(t)
	f := listFixture{store: store, db: database, recipes: map[string]uint{}, tags: map[string]uint{}}

	author := models.User{Name: "Bob Smith", Email: "bob@example.com"}
	mustCreate(t, database, &author)

	for _, name := range []string{"vegetarian", "healthy", "spicy"} {
		tag := models.DietaryTag{TagName: name}
		mustCreate(t, database, &tag)
		f.tags[name] = tag.ID
	}
	ingredients := map[string]uint{}
	for _, name := range []string{"Rice", "Garlic", "Chili Oil", "Basmati Rice"} {
		ing := models.Ingredient{Name: name}
		mustCreate(t, database, &ing)
		ingredients[name] = ing.ID
	}

	recipes := []struct {
		name     string
		prep     *int
		author   *uint
		images   []string
		tags     []string
		contains []string
	}{
		{"Fried Rice", intPtr(20), &author.ID, []string{"c.jpg", "a.jpg", "b.jpg"}, []string{"vegetarian", "healthy", "spicy"}, []string{"Rice", "Garlic", "Basmati Rice"}},
		{"Chili Noodles", intPtr(45), nil, nil, []string{"spicy"}, []string{"Chili Oil", "Garlic"}},
		{"Mystery Stew", nil, nil, []string{"stew.jpg"}, nil, nil},
		{"Apple Slices", intPtr(5), &author.ID, nil, []string{"healthy"}, nil},
	}
	for _, r := range recipes {
		recipe := models.Recipe{Name: r.name, Instructions: "Cook.", PrepTimeMinutes: r.prep, AuthorID: r.author}
		mustCreate(t, database, &recipe)
		f.recipes[r.name] = recipe.ID
		for _, path := range r.images {
			mustCreate(t, database, &models.Image{RecipeID: recipe.ID, FilePath: path, AltText: "alt " + path})
		}
		for _, tag := range r.tags {
			mustCreate(t, database, &models.RecipeTag{RecipeID: recipe.ID, TagID: f.tags[tag]})
		}
		for _, ing := range r.contains {
			mustCreate(t, database, &models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredients[ing], Quantity: "1 cup"})
		}
	}
	return f
}

func names(rows []Summary) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func byName(rows []Summary, name string) *Summary {
	for i := range rows {
		if rows[i].Name == name {
			return &rows[i]
		}
	}
	return nil
}

func TestListReturnsOneRowPerRecipeSortedByName(t *testing.T) {
	t.Parallel()

	f := newListFixture(t)
	rows, err := f.store.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Apple Slices", "Chili Noodles", "Fried Rice", "Mystery Stew"}
	if got := names(rows); !equalStrings(got, want) {
		t.Fatalf("List names = %v, want %v", got, want)
	}

	fried := byName(rows, "Fried Rice")
	if got := fried.Tags(); !equalStrings(got, []string{"healthy", "spicy", "vegetarian"}) {
		t.Fatalf("Fried Rice tags = %v", got)
	}
	if fried.AuthorName == nil || *fried.AuthorName != "Bob Smith" {
		t.Fatalf("Fried Rice author = %v", fried.AuthorName)
	}
	if byName(rows, "Chili Noodles").AuthorName != nil {
		t.Fatal("expected nil author for unattributed recipe")
	}
	if stew := byName(rows, "Mystery Stew"); stew.TagList != "" || stew.Tags() != nil {
		t.Fatalf("expected empty tag list, got %q", stew.TagList)
	}
}

func TestListPicksCanonicalImage(t *testing.T) {
	t.Parallel()

	f := newListFixture(t)
	for i := 0; i < 3; i++ {
		rows, err := f.store.List(context.Background(), Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		fried := byName(rows, "Fried Rice")
		if fried.ImageURL == nil || *fried.ImageURL != "a.jpg" {
			t.Fatalf("Fried Rice image = %v, want a.jpg", fried.ImageURL)
		}
		if fried.ImageAlt == nil || *fried.ImageAlt != "alt a.jpg" {
			t.Fatalf("Fried Rice alt = %v, want the alt text of a.jpg", fried.ImageAlt)
		}
		if noodles := byName(rows, "Chili Noodles"); noodles.ImageURL != nil || noodles.ImageAlt != nil {
			t.Fatalf("expected no image for Chili Noodles, got %v", noodles.ImageURL)
		}
	}
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	f := newListFixture(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"tag", Filter{Tag: "spicy"}, []string{"Chili Noodles", "Fried Rice"}},
		{"unknown tag", Filter{Tag: "vegan"}, []string{}},
		{"max prep keeps null prep", Filter{MaxPrepTime: intPtr(20)}, []string{"Apple Slices", "Fried Rice", "Mystery Stew"}},
		{"ingredient substring case-insensitive", Filter{Ingredient: "rICE"}, []string{"Fried Rice"}},
		{"ingredient literal percent", Filter{Ingredient: "%"}, []string{}},
		{"composed", Filter{Tag: "spicy", MaxPrepTime: intPtr(30), Ingredient: "garlic"}, []string{"Fried Rice"}},
		{"composed excludes", Filter{Tag: "healthy", Ingredient: "chili"}, []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rows, err := f.store.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List(%+v): %v", tt.filter, err)
			}
			if got := names(rows); !equalStrings(got, tt.want) {
				t.Fatalf("List(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestListTagFilterKeepsAllTags(t *testing.T) {
	t.Parallel()

	f := newListFixture(t)
	rows, err := f.store.List(context.Background(), Filter{Tag: "healthy", Ingredient: "rice"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row, got %v", names(rows))
	}
	if rows[0].TagList != "healthy,spicy,vegetarian" {
		t.Fatalf("tags = %q, want every tag of the recipe once", rows[0].TagList)
	}
}

func TestListReviewAggregates(t *testing.T) {
	t.Parallel()

	f := newListFixture(t)
	fried := f.recipes["Fried Rice"]
	mustCreate(t, f.db, &models.Review{RecipeID: fried, Rating: 5})
	mustCreate(t, f.db, &models.Review{RecipeID: fried, Rating: 2})

	rows, err := f.store.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	row := byName(rows, "Fried Rice")
	if row.ReviewCount != 2 || row.AvgRating == nil || *row.AvgRating != 3.5 {
		t.Fatalf("aggregates = %d / %v, want 2 / 3.5", row.ReviewCount, row.AvgRating)
	}
	if other := byName(rows, "Apple Slices"); other.ReviewCount != 0 || other.AvgRating != nil {
		t.Fatalf("expected no reviews for Apple Slices, got %d / %v", other.ReviewCount, other.AvgRating)
	}
	if len(rows) != 4 {
		t.Fatalf("reviews must not multiply rows, got %d", len(rows))
	}
}

func TestListTiesBreakByID(t *testing.T) {
	t.Parallel()

	store, database := newTestStore(t)
	first := models.Recipe{Name: "Toast", Instructions: "one"}
	second := models.Recipe{Name: "Toast", Instructions: "two"}
	mustCreate(t, database, &first)
	mustCreate(t, database, &second)

	rows, err := store.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != first.ID || rows[1].ID != second.ID {
		t.Fatalf("unexpected order %+v", rows)
	}
}

func TestListSeededData(t *testing.T) {
	t.Parallel()

	database, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("mock.New: %v", err)
	}
	store := New(database)

	rows, err := store.List(context.Background(), Filter{Tag: "vegan"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no vegan recipes, got %v", names(rows))
	}

	rows, err = store.List(context.Background(), Filter{Tag: "italian"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := names(rows); !equalStrings(got, []string{"Margherita Pizza", "Veggie Pizza"}) {
		t.Fatalf("italian recipes = %v", got)
	}
	if rows[0].TagList != "italian,vegetarian" {
		t.Fatalf("Margherita tags = %q", rows[0].TagList)
	}
}

func TestLikePatternEscapesMetacharacters(t *testing.T) {
	t.Parallel()

	if got := likePattern(`50%_A\b`); got != `%50\%\_a\\b%` {
		t.Fatalf("likePattern = %q", got)
	}
}

func TestFilterIsZero(t *testing.T) {
	t.Parallel()

	if !(Filter{}).IsZero() {
		t.Fatal("expected empty filter to be zero")
	}
	if (Filter{MaxPrepTime: intPtr(0)}).IsZero() {
		t.Fatal("expected max prep time 0 to be a constraint")
	}
}

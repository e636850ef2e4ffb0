package models

// All lists every persisted model in dependency order: a model only references
// models that appear before it.
func All() []any {
	return []any{
		&User{},
		&Recipe{},
		&Ingredient{},
		&DietaryTag{},
		&RecipeIngredient{},
		&RecipeTag{},
		&Image{},
		&Review{},
		&Favorite{},
	}
}

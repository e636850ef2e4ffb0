package models

// Ingredient is a catalogue entry shared by every recipe that uses it.
type Ingredient struct {
	ID   uint   `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecipeIngredient links a recipe to an ingredient with a free-text quantity.
type RecipeIngredient struct {
	RecipeID     uint        `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint        `gorm:"primaryKey;autoIncrement:false;index:idx_recipe_ingredients_ing" json:"ingredient_id"`
	Quantity     string      `json:"quantity"`
	Recipe       *Recipe     `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

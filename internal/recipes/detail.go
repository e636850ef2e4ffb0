package recipes

import (
	"context"
	"time"

	"mealshare/models"
)

// RecipeRow is a recipe with its author's display name resolved.
type RecipeRow struct {
	ID              uint      `gorm:"column:recipe_id"`
	Name            string    `gorm:"column:name"`
	Instructions    string    `gorm:"column:instructions"`
	PrepTimeMinutes *int      `gorm:"column:prep_time_minutes"`
	CostEstimate    *float64  `gorm:"column:cost_estimate"`
	AuthorID        *uint     `gorm:"column:author_id"`
	AuthorName      *string   `gorm:"column:author_name"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

// ReviewRow is a review with its reviewer's display name resolved.
type ReviewRow struct {
	ID           uint      `gorm:"column:review_id"`
	RecipeID     uint      `gorm:"column:recipe_id"`
	UserID       *uint     `gorm:"column:user_id"`
	Rating       int       `gorm:"column:rating"`
	Comment      string    `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	ReviewerName *string   `gorm:"column:reviewer_name"`
}

// IngredientLine is an ingredient name with the quantity a recipe calls for.
type IngredientLine struct {
	Name     string `gorm:"column:name"`
	Quantity string `gorm:"column:quantity"`
}

// Detail is everything the recipe page shows.
type Detail struct {
	Recipe      RecipeRow
	Images      []models.Image
	Reviews     []ReviewRow
	Ingredients []IngredientLine
	Users       []models.User
}

// Detail gathers a recipe, all of its images in insertion order, its reviews
// newest first, its ingredients by name and the user roster. It returns
// ErrRecipeNotFound when no recipe has the id.
func (s *Store) Detail(ctx context.Context, id uint) (*Detail, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	detail := &Detail{}
	result := db.Table("recipes AS r").
		Select("r.recipe_id, r.name, r.instructions, r.prep_time_minutes, r.cost_estimate, r.author_id, r.created_at, u.name AS author_name").
		Joins("LEFT JOIN users u ON u.user_id = r.author_id").
		Where("r.recipe_id = ?", id).
		Limit(1).
		Scan(&detail.Recipe)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}

	if err := db.Where("recipe_id = ?", id).Order("image_id ASC").Find(&detail.Images).Error; err != nil {
		return nil, err
	}

	if err := db.Table("reviews AS rv").
		Select("rv.review_id, rv.recipe_id, rv.user_id, rv.rating, rv.comment, rv.created_at, u.name AS reviewer_name").
		Joins("LEFT JOIN users u ON u.user_id = rv.user_id").
		Where("rv.recipe_id = ?", id).
		Order("rv.created_at DESC, rv.review_id DESC").
		Scan(&detail.Reviews).Error; err != nil {
		return nil, err
	}

	if err := db.Table("recipe_ingredients AS ri").
		Select("ing.name, ri.quantity").
		Joins("JOIN ingredients ing ON ing.ingredient_id = ri.ingredient_id").
		Where("ri.recipe_id = ?", id).
		Order("ing.name ASC").
		Scan(&detail.Ingredients).Error; err != nil {
		return nil, err
	}

	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	detail.Users = users

	return detail, nil
}

package recipes

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mealshare/models"
)

// NewRecipe is the input of CreateRecipe.
type NewRecipe struct {
	Name            string `validate:"required"`
	Instructions    string `validate:"required"`
	PrepTimeMinutes *int
	CostEstimate    *float64
	AuthorID        *uint
	ImageURL        string
	ImageAlt        string
	IngredientsText string
	TagIDs          []uint
}

func (n *NewRecipe) normalize() {
	n.Name = strings.TrimSpace(n.Name)
	n.Instructions = strings.TrimSpace(n.Instructions)
	n.ImageURL = strings.TrimSpace(n.ImageURL)
	n.ImageAlt = strings.TrimSpace(n.ImageAlt)
	if n.AuthorID != nil && *n.AuthorID == 0 {
		n.AuthorID = nil
	}
}

// Validate trims the input in place and reports ErrInvalidRecipe when the name
// or the instructions are empty.
func (n *NewRecipe) Validate() error {
	n.normalize()
	if err := validate.Struct(n); err != nil {
		return firstFieldError(err, []string{"Name", "Instructions"}, map[string]error{
			"Name":         ErrInvalidRecipe,
			"Instructions": ErrInvalidRecipe,
		})
	}
	return nil
}

// CreateRecipe validates in and then writes the recipe, its optional image,
// its tag links and its ingredient links in one transaction. Nothing is
// written when validation fails. Duplicate tag or ingredient links are
// ignored, existing ingredients are reused by name and tag ids that do not
// exist are skipped.
func (s *Store) CreateRecipe(ctx context.Context, in NewRecipe) (uint, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	var recipeID uint
	err = db.Transaction(func(tx *gorm.DB) error {
		if in.AuthorID != nil {
			var count int64
			if err := tx.Model(&models.User{}).Where("user_id = ?", *in.AuthorID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUnknownAuthor
			}
		}

		recipe := models.Recipe{
			Name:            in.Name,
			Instructions:    in.Instructions,
			PrepTimeMinutes: in.PrepTimeMinutes,
			CostEstimate:    in.CostEstimate,
			AuthorID:        in.AuthorID,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		recipeID = recipe.ID

		if in.ImageURL != "" {
			alt := in.ImageAlt
			if alt == "" {
				alt = in.Name
			}
			if err := tx.Create(&models.Image{RecipeID: recipe.ID, FilePath: in.ImageURL, AltText: alt}).Error; err != nil {
				return err
			}
		}

		if err := linkTags(tx, recipe.ID, in.TagIDs); err != nil {
			return err
		}
		return linkIngredients(tx, recipe.ID, ParseIngredients(in.IngredientsText))
	})
	if err != nil {
		return 0, err
	}
	return recipeID, nil
}

func linkTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	var existing []uint
	if err := tx.Model(&models.DietaryTag{}).Where("tag_id IN ?", tagIDs).Pluck("tag_id", &existing).Error; err != nil {
		return err
	}
	for _, tagID := range existing {
		link := models.RecipeTag{RecipeID: recipeID, TagID: tagID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func linkIngredients(tx *gorm.DB, recipeID uint, lines []IngredientLine) error {
	for _, line := range lines {
		ingredient := models.Ingredient{Name: line.Name}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&ingredient).Error; err != nil {
			return err
		}

		var stored models.Ingredient
		if err := tx.Where("name = ?", line.Name).Take(&stored).Error; err != nil {
			return err
		}

		link := models.RecipeIngredient{RecipeID: recipeID, IngredientID: stored.ID, Quantity: line.Quantity}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

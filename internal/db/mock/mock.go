package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mealshare/internal/db"
	applog "mealshare/internal/log"
	"mealshare/models"
)

var instances atomic.Int64

// New returns an in-memory sqlite database seeded with the sample campus
// recipes. Each call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := db.SQLiteDSN(fmt.Sprintf("file:mealshare-mock-%d?mode=memory&cache=shared", instances.Add(1)))
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := Seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

// Seed loads the fixture data into an empty, migrated database inside a
// single transaction.
func Seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding database")

	err := database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]models.DietaryTag, 0, len(tagNames))
		for _, name := range tagNames {
			tags = append(tags, models.DietaryTag{TagName: name})
		}
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}

		users := []models.User{
			{Name: "Alice Johnson", Email: "alice@campus.edu"},
			{Name: "Bob Smith", Email: "bob@campus.edu"},
			{Name: "Charlie Davis", Email: "charlie@campus.edu"},
			{Name: "Diana Martinez", Email: "diana@campus.edu"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		ingredients := make([]models.Ingredient, 0, len(ingredientNames))
		for _, name := range ingredientNames {
			ingredients = append(ingredients, models.Ingredient{Name: name})
		}
		if err := tx.CreateInBatches(&ingredients, 50).Error; err != nil {
			return fmt.Errorf("seed ingredients: %w", err)
		}

		tagID := indexTags(tags)
		recipeIDs := make([]uint, len(recipeFixtures))
		recipeID := func(position int) uint { return recipeIDs[position-1] }
		for i, fixture := range recipeFixtures {
			author := users[fixture.author].ID
			prepTime, cost := fixture.prepTime, fixture.cost
			recipe := models.Recipe{
				Name:            fixture.name,
				Instructions:    fixture.instructions,
				PrepTimeMinutes: &prepTime,
				CostEstimate:    &cost,
				AuthorID:        &author,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %q: %w", fixture.name, err)
			}
			image := models.Image{RecipeID: recipe.ID, FilePath: fixture.image, AltText: fixture.name}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("seed image for %q: %w", fixture.name, err)
			}
			for _, tag := range fixture.tags {
				if err := tx.Create(&models.RecipeTag{RecipeID: recipe.ID, TagID: tagID[tag]}).Error; err != nil {
					return fmt.Errorf("seed tag %q for %q: %w", tag, fixture.name, err)
				}
			}
			recipeIDs[i] = recipe.ID
		}

		for _, review := range reviewFixtures {
			user := users[review.user].ID
			row := models.Review{
				RecipeID: recipeID(review.recipe),
				UserID:   &user,
				Rating:   review.rating,
				Comment:  review.comment,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed review: %w", err)
			}
		}

		for _, favorite := range favoriteFixtures {
			row := models.Favorite{UserID: users[favorite.user].ID, RecipeID: recipeID(favorite.recipe)}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed favorite: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	applog.Debug(ctx, "database seeded", "recipes", len(recipeFixtures), "tags", len(tagNames))
	return nil
}

func indexTags(tags []models.DietaryTag) map[string]uint {
	index := make(map[string]uint, len(tags))
	for _, tag := range tags {
		index[tag.TagName] = tag.ID
	}
	return index
}

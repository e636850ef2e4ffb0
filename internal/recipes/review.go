package recipes

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"mealshare/models"
)

// NewReview is the input of CreateReview.
type NewReview struct {
	RecipeID uint
	UserID   uint `validate:"required"`
	Rating   int  `validate:"min=1,max=5"`
	Comment  string
}

// Validate checks the rating before the reviewer and returns the sentinel
// for the first failure.
func (n *NewReview) Validate() error {
	n.Comment = strings.TrimSpace(n.Comment)
	if err := validate.Struct(n); err != nil {
		return firstFieldError(err, []string{"Rating", "UserID"}, map[string]error{
			"Rating": ErrInvalidRating,
			"UserID": ErrMissingReviewer,
		})
	}
	return nil
}

// CreateReview validates in and inserts one review. It returns
// ErrRecipeNotFound for an unknown recipe and ErrMissingReviewer when the
// reviewer does not exist.
func (s *Store) CreateReview(ctx context.Context, in NewReview) error {
	if err := in.Validate(); err != nil {
		return err
	}
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Recipe{}).Where("recipe_id = ?", in.RecipeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrRecipeNotFound
		}
		if err := tx.Model(&models.User{}).Where("user_id = ?", in.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrMissingReviewer
		}

		userID := in.UserID
		review := models.Review{
			RecipeID: in.RecipeID,
			UserID:   &userID,
			Rating:   in.Rating,
			Comment:  in.Comment,
		}
		return tx.Create(&review).Error
	})
}

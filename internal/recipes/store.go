// Package recipes holds the storage-facing logic of the application: the
// recipe listing query, the detail aggregation and the two write paths.
package recipes

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mealshare/models"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidRecipe   = errors.New("name and instructions are required")
	ErrUnknownAuthor   = errors.New("selected author does not exist")
	ErrInvalidRating   = errors.New("please provide a valid rating (1-5)")
	ErrMissingReviewer = errors.New("please select who is leaving the review")
)

// Store runs every query against one gorm handle. Each call acquires a pooled
// connection for the duration of the call only.
type Store struct {
	db *gorm.DB
}

// New wraps db. A nil handle yields a Store whose methods fail with
// gorm.ErrInvalidDB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) conn(ctx context.Context) (*gorm.DB, error) {
	if s == nil || s.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	return s.db.WithContext(ctx), nil
}

// Users returns the roster used to attribute recipes and reviews, sorted by name.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := db.Select("user_id", "name").Order("name ASC, user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Tags returns every dietary tag sorted by name.
func (s *Store) Tags(ctx context.Context) ([]models.DietaryTag, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var tags []models.DietaryTag
	if err := db.Order("tag_name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// TagNames returns the distinct tag names for the filter dropdown. It never
// depends on the current filter.
func (s *Store) TagNames(ctx context.Context) ([]string, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := db.Model(&models.DietaryTag{}).Distinct("tag_name").Order("tag_name ASC").Pluck("tag_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// DeleteUser removes a user. Their recipes and reviews stay, with the
// author and reviewer references cleared by the schema.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&models.User{}, id).Error
}

// Ping checks that the underlying database answers.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.conn(ctx); err != nil {
		return err
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

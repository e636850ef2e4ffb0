package models

import "time"

// Review is a 1-5 star rating with an optional comment. The reviewer is
// nullable so reviews survive the deletion of their author.
type Review struct {
	ID        uint      `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	UserID    *uint     `json:"user_id"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

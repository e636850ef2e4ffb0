package models

import "time"

// Recipe is the central entity. Images, reviews, tag and ingredient links and
// favorites all cascade away with it; deleting its author only clears AuthorID.
type Recipe struct {
	ID              uint      `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	Name            string    `gorm:"not null;index:idx_recipes_name" json:"name"`
	Instructions    string    `gorm:"type:text;not null" json:"instructions"`
	PrepTimeMinutes *int      `gorm:"index:idx_recipes_prep_time" json:"prep_time_minutes"`
	CostEstimate    *float64  `json:"cost_estimate"`
	AuthorID        *uint     `json:"author_id"`
	Author          *User     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Images          []Image   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews         []Review  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

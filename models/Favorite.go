package models

import "time"

type Favorite struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false;index:idx_favorites_user" json:"user_id"`
	RecipeID  uint      `gorm:"primaryKey;autoIncrement:false;index:idx_favorites_recipe" json:"recipe_id"`
	DateSaved time.Time `gorm:"autoCreateTime" json:"date_saved"`
	User      *User     `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

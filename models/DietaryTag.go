package models

// DietaryTag is a named attribute such as "vegan" attached to recipes.
type DietaryTag struct {
	ID      uint   `gorm:"column:tag_id;primaryKey;autoIncrement" json:"tag_id"`
	TagName string `gorm:"column:tag_name;uniqueIndex;not null;check:chk_dietary_tags_name,tag_name NOT LIKE '%,%'" json:"tag_name"`
}

func (DietaryTag) TableName() string {
	return "dietary_tags"
}

type RecipeTag struct {
	RecipeID uint        `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	TagID    uint        `gorm:"column:tag_id;primaryKey;autoIncrement:false;index:idx_recipe_tags_tag" json:"tag_id"`
	Recipe   *Recipe     `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Tag      *DietaryTag `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

package models

type Image struct {
	ID       uint   `gorm:"column:image_id;primaryKey;autoIncrement" json:"image_id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	FilePath string `gorm:"not null" json:"file_path"`
	AltText  string `json:"alt_text"`
}

func (Image) TableName() string {
	return "images"
}

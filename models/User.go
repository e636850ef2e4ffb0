package models

import "time"

// User represents a person who authors recipes and leaves reviews.
type User struct {
	ID        uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Reviews   []Review  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"reviews,omitempty"`
}

func (User) TableName() string {
	return "users"
}

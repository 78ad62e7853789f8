package model

import "time"

// Category classifies products. Rows are created through the category entry
// use case and never updated or deleted here; the id is assigned by the
// store and immutable.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string { return "categories" }

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single catalog entry. CategoryID is a required, non-owning
// reference: a product cannot exist without a category, but deleting products
// never touches the categories table.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"index;not null"`
	Quantity   int             `gorm:"not null;default:0"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID uint            `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "products" }

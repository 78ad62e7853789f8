package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kozlekmarchewkowy/magazyn/internal/model"
)

// ProductRepository defines the gateway operations on the products
// collection.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	// ListRecent returns the newest products first (id descending), capped
	// at limit, with the joined category preloaded. A missing category
	// leaves p.Category nil.
	ListRecent(ctx context.Context, limit int) ([]model.Product, error)
	// ListAll returns every product with its category preloaded, newest
	// first. Used by the stats view.
	ListAll(ctx context.Context) ([]model.Product, error)
	// DeleteAll removes every product. Categories are untouched.
	DeleteAll(ctx context.Context) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) ListRecent(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("id > ?", 0).Delete(&model.Product{}).Error
}

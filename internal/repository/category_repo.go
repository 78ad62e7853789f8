// Package repository is the data access gateway: the only code issuing
// queries against the remote store. It does no caching and no error
// classification — raw store errors propagate to the services, which fold
// them into the shared taxonomy.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kozlekmarchewkowy/magazyn/internal/model"
)

// CategoryRepository defines the gateway operations on the categories
// collection. Services depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via stubs.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

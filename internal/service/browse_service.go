package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/model"
	"github.com/kozlekmarchewkowy/magazyn/internal/repository"
)

// NoCategory is the placeholder shown when a product's joined category is
// missing.
const NoCategory = "None"

// DefaultRecentLimit caps the browse window when no other cap is configured.
const DefaultRecentLimit = 10

// Browse is the read model over products: the recent listing, warehouse
// stats, and the admin reset.
type Browse interface {
	FetchRecent(ctx context.Context, limit int) ([]dto.ProductRow, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	ResetProducts(ctx context.Context, confirm bool) error
}

type browse struct {
	repo repository.ProductRepository
	max  int
}

// NewBrowse builds the read model. maxLimit is the widest recent window a
// caller may request; non-positive falls back to DefaultRecentLimit.
func NewBrowse(repo repository.ProductRepository, maxLimit int) Browse {
	if maxLimit <= 0 {
		maxLimit = DefaultRecentLimit
	}
	return &browse{repo: repo, max: maxLimit}
}

// flatten hoists the joined category's name onto the row and discards the
// nested object.
func flatten(p model.Product) dto.ProductRow {
	row := dto.ProductRow{
		ID:           p.ID,
		Name:         p.Name,
		CategoryName: NoCategory,
		Quantity:     p.Quantity,
		Price:        p.Price,
	}
	if p.Category != nil {
		row.CategoryName = p.Category.Name
	}
	return row
}

// FetchRecent returns the newest products as flattened rows. Zero rows is an
// expected "no products yet" state, not a fetch failure.
func (s *browse) FetchRecent(ctx context.Context, limit int) ([]dto.ProductRow, error) {
	if limit <= 0 || limit > s.max {
		limit = s.max
	}

	products, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.Remote("failed to list products", err)
	}
	if len(products) == 0 {
		return nil, apperror.EmptyResult("no products yet")
	}

	rows := make([]dto.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, flatten(p))
	}
	return rows, nil
}

// Stats aggregates the whole catalog: product count, total units, total
// inventory value (Σ price×quantity) and per-category product counts, largest
// first.
func (s *browse) Stats(ctx context.Context) (dto.StatsResponse, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return dto.StatsResponse{}, apperror.Remote("failed to list products", err)
	}
	if len(products) == 0 {
		return dto.StatsResponse{}, apperror.EmptyResult("no products yet")
	}

	stats := dto.StatsResponse{
		Products:   len(products),
		TotalValue: decimal.Zero,
	}
	perCategory := make(map[string]int)
	for _, p := range products {
		row := flatten(p)
		stats.TotalUnits += row.Quantity
		stats.TotalValue = stats.TotalValue.Add(row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))))
		perCategory[row.CategoryName]++
	}

	stats.ByCategory = make([]dto.CategoryCount, 0, len(perCategory))
	for name, n := range perCategory {
		stats.ByCategory = append(stats.ByCategory, dto.CategoryCount{CategoryName: name, Products: n})
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		a, b := stats.ByCategory[i], stats.ByCategory[j]
		if a.Products != b.Products {
			return a.Products > b.Products
		}
		return a.CategoryName < b.CategoryName
	})
	return stats, nil
}

// ResetProducts deletes every product. The confirmation flag is required;
// categories are never touched.
func (s *browse) ResetProducts(ctx context.Context, confirm bool) error {
	if !confirm {
		return apperror.Validation("confirmation required")
	}
	if err := s.repo.DeleteAll(ctx); err != nil {
		return apperror.Remote("failed to delete products", err)
	}
	return nil
}

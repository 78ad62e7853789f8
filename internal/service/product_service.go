package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/model"
	"github.com/kozlekmarchewkowy/magazyn/internal/repository"
)

// ProductEntry validates and submits new products, resolving the category
// reference through a name lookup rather than a raw id.
type ProductEntry interface {
	Create(ctx context.Context, req dto.NewProductRequest, lookup dto.CategoryLookup) (dto.ProductResponse, error)
}

type productEntry struct {
	repo      repository.ProductRepository
	directory *Directory
}

func NewProductEntry(repo repository.ProductRepository, directory *Directory) ProductEntry {
	return &productEntry{repo: repo, directory: directory}
}

// Create submits a new product. Validation order: required name, lookup
// freshness, category resolution. The lookup is not refreshed here — a stale
// or unknown selection tells the caller to rebuild the directory and retry.
func (s *productEntry) Create(ctx context.Context, req dto.NewProductRequest, lookup dto.CategoryLookup) (dto.ProductResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return dto.ProductResponse{}, apperror.Validation("name required")
	}
	if req.Quantity < 0 {
		return dto.ProductResponse{}, apperror.Validation("quantity must not be negative")
	}
	if req.Price.LessThan(decimal.Zero) {
		return dto.ProductResponse{}, apperror.Validation("price must not be negative")
	}

	if req.LookupVersion != 0 && req.LookupVersion != s.directory.Version() {
		return dto.ProductResponse{}, apperror.Validation("category list changed, rebuild the lookup")
	}

	// Selection is constrained to known categories at the UI boundary, but a
	// lookup can go stale between fetch and submit.
	categoryID, ok := lookup.Resolve(req.CategoryName)
	if !ok {
		return dto.ProductResponse{}, apperror.Validation("unknown category")
	}

	p := &model.Product{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CategoryID: categoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductResponse{}, apperror.Remote("failed to save product", err)
	}

	return dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		CategoryID: p.CategoryID,
	}, nil
}

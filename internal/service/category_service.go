package service

import (
	"context"
	"strings"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/model"
	"github.com/kozlekmarchewkowy/magazyn/internal/repository"
)

// CategoryEntry validates and submits new categories.
type CategoryEntry interface {
	Create(ctx context.Context, req dto.NewCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
}

type categoryEntry struct {
	repo      repository.CategoryRepository
	directory *Directory
}

func NewCategoryEntry(repo repository.CategoryRepository, directory *Directory) CategoryEntry {
	return &categoryEntry{repo: repo, directory: directory}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// Create submits a new category. On success every previously built lookup is
// invalidated: the directory must be rebuilt before its next use.
func (s *categoryEntry) Create(ctx context.Context, req dto.NewCategoryRequest) (dto.CategoryResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return dto.CategoryResponse{}, apperror.Validation("name required")
	}

	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoryResponse{}, apperror.Remote("failed to save category", err)
	}

	s.directory.Invalidate(ctx)
	return mapCategory(*c), nil
}

// List serves the read-only category listing, through the directory's cache.
func (s *categoryEntry) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.directory.Categories(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// CategoryService handles category operations
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req NamedRequest) (*NamedResponse, error) {
	if _, err := s.categories.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	response := toCategoryResponse(category)
	return &response, nil
}

// Update renames a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req NamedRequest) (*NamedResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	response := toCategoryResponse(category)
	return &response, nil
}

// GetByID returns a single category
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*NamedResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := toCategoryResponse(category)
	return &response, nil
}

// List returns a page of categories
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) ([]NamedResponse, int64, error) {
	filter.Normalize()
	categories, total, err := s.categories.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NamedResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}
	return responses, total, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// BrandService handles brand operations
type BrandService struct {
	brands catalog.BrandRepository
}

// NewBrandService creates a new BrandService
func NewBrandService(brands catalog.BrandRepository) *BrandService {
	return &BrandService{brands: brands}
}

// Create creates a new brand
func (s *BrandService) Create(ctx context.Context, req NamedRequest) (*NamedResponse, error) {
	if _, err := s.brands.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Brand with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	brand, err := catalog.NewBrand(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.brands.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := toBrandResponse(brand)
	return &response, nil
}

// Update renames a brand
func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req NamedRequest) (*NamedResponse, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.brands.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := toBrandResponse(brand)
	return &response, nil
}

// GetByID returns a single brand
func (s *BrandService) GetByID(ctx context.Context, id uuid.UUID) (*NamedResponse, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := toBrandResponse(brand)
	return &response, nil
}

// List returns a page of brands
func (s *BrandService) List(ctx context.Context, filter shared.Filter) ([]NamedResponse, int64, error) {
	filter.Normalize()
	brands, total, err := s.brands.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NamedResponse, 0, len(brands))
	for i := range brands {
		responses = append(responses, toBrandResponse(&brands[i]))
	}
	return responses, total, nil
}

// Delete removes a brand
func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.brands.Delete(ctx, id)
}

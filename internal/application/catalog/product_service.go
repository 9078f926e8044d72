package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// ProductService handles local catalog product operations
type ProductService struct {
	products   catalog.ProductRepository
	brands     catalog.BrandRepository
	categories catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	products catalog.ProductRepository,
	brands catalog.BrandRepository,
	categories catalog.CategoryRepository,
) *ProductService {
	return &ProductService{
		products:   products,
		brands:     brands,
		categories: categories,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.products.FindBySKU(ctx, req.SKU); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if req.BrandID != nil {
		if _, err := s.brands.FindByID(ctx, *req.BrandID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_BRAND", "Brand not found")
			}
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.SKU, req.Name)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.BrandID = req.BrandID
	product.CategoryID = req.CategoryID
	product.CreatedBy = req.CreatedBy

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// Update modifies an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.products.FindBySKU(ctx, req.SKU); err == nil && existing.ID != id {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := product.Update(req.SKU, req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if *req.Status {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := toProductResponse(product)
	return &response, nil
}

// List returns a page of products
func (s *ProductService) List(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	filter := catalog.ProductFilter{
		Filter: shared.Filter{
			Page:     req.Page,
			Limit:    req.Limit,
			OrderBy:  req.OrderBy,
			OrderDir: req.OrderDir,
		},
		Name:   req.Name,
		Status: req.Status,
	}
	filter.Normalize()

	products, total, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}

	return &ListProductsResponse{
		Products: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/catalog"
)

// CreateProductRequest contains the data needed to create a product
type CreateProductRequest struct {
	SKU         string     `json:"sku" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description"`
	BrandID     *uuid.UUID `json:"brand_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateProductRequest contains the data needed to update a product
type UpdateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
}

// ProductResponse is the outward representation of a product
type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	BrandID     *uuid.UUID `json:"brand_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListProductsRequest narrows a product listing
type ListProductsRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Name     string `form:"name"`
	Status   *bool  `form:"status"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// ListProductsResponse is a page of products plus the total count
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// NamedRequest covers brand and category writes, which are name-only
type NamedRequest struct {
	Name string `json:"name" binding:"required"`
}

// NamedResponse is the outward representation of a brand or category
type NamedResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		BrandID:     product.BrandID,
		CategoryID:  product.CategoryID,
		Status:      product.Status,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toBrandResponse(brand *catalog.Brand) NamedResponse {
	return NamedResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
}

func toCategoryResponse(category *catalog.Category) NamedResponse {
	return NamedResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// ProductFilter narrows product list queries
type ProductFilter struct {
	shared.Filter
	Name        string
	Status      *bool
	CategoryIDs []uuid.UUID
	BrandID     *uuid.UUID
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	FindByName(ctx context.Context, name string) (*Brand, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Brand, int64, error)
	Save(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, int64, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

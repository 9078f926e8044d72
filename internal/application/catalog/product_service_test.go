package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// memoryProductRepo is an in-memory catalog.ProductRepository for service tests
type memoryProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memoryProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryProductRepo) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, int64, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *memoryProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *memoryProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// memoryBrandRepo is an in-memory catalog.BrandRepository
type memoryBrandRepo struct {
	brands map[uuid.UUID]*catalog.Brand
}

func newMemoryBrandRepo() *memoryBrandRepo {
	return &memoryBrandRepo{brands: make(map[uuid.UUID]*catalog.Brand)}
}

func (r *memoryBrandRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	if b, ok := r.brands[id]; ok {
		return b, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryBrandRepo) FindByName(ctx context.Context, name string) (*catalog.Brand, error) {
	for _, b := range r.brands {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryBrandRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, int64, error) {
	var out []catalog.Brand
	for _, b := range r.brands {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *memoryBrandRepo) Save(ctx context.Context, brand *catalog.Brand) error {
	r.brands[brand.ID] = brand
	return nil
}

func (r *memoryBrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.brands[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.brands, id)
	return nil
}

// memoryCategoryRepo is an in-memory catalog.CategoryRepository
type memoryCategoryRepo struct {
	categories map[uuid.UUID]*catalog.Category
}

func newMemoryCategoryRepo() *memoryCategoryRepo {
	return &memoryCategoryRepo{categories: make(map[uuid.UUID]*catalog.Category)}
}

func (r *memoryCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCategoryRepo) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryCategoryRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, int64, error) {
	var out []catalog.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *memoryCategoryRepo) Save(ctx context.Context, category *catalog.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *memoryCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func newTestProductService() (*ProductService, *memoryBrandRepo, *memoryCategoryRepo) {
	brands := newMemoryBrandRepo()
	categories := newMemoryCategoryRepo()
	return NewProductService(newMemoryProductRepo(), brands, categories), brands, categories
}

func TestProductService_Create(t *testing.T) {
	svc, brands, _ := newTestProductService()
	ctx := context.Background()

	t.Run("basic create", func(t *testing.T) {
		product, err := svc.Create(ctx, CreateProductRequest{SKU: "sku-1", Name: "Widget"})
		require.NoError(t, err)
		assert.Equal(t, "SKU-1", product.SKU)
		assert.True(t, product.Status)
	})

	t.Run("duplicate sku", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-1", Name: "Other"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("unknown brand", func(t *testing.T) {
		missing := uuid.New()
		_, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-2", Name: "X", BrandID: &missing})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_BRAND", domainErr.Code)
	})

	t.Run("with valid brand", func(t *testing.T) {
		brand, err := catalog.NewBrand("Acme")
		require.NoError(t, err)
		require.NoError(t, brands.Save(ctx, brand))

		product, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-3", Name: "Y", BrandID: &brand.ID})
		require.NoError(t, err)
		require.NotNil(t, product.BrandID)
		assert.Equal(t, brand.ID, *product.BrandID)
	})
}

func TestProductService_Update(t *testing.T) {
	svc, _, _ := newTestProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-1", Name: "Widget"})
	require.NoError(t, err)

	t.Run("rename and deactivate", func(t *testing.T) {
		inactive := false
		updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{SKU: "SKU-1", Name: "Widget v2", Status: &inactive})
		require.NoError(t, err)
		assert.Equal(t, "Widget v2", updated.Name)
		assert.False(t, updated.Status)
	})

	t.Run("sku collision", func(t *testing.T) {
		other, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-2", Name: "Other"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, other.ID, UpdateProductRequest{SKU: "SKU-1", Name: "Other"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), UpdateProductRequest{SKU: "Z", Name: "Z"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_ListAndDelete(t *testing.T) {
	svc, _, _ := newTestProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductRequest{SKU: "SKU-1", Name: "Widget"})
	require.NoError(t, err)

	list, err := svc.List(ctx, ListProductsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, 1, list.Page)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), shared.ErrNotFound)
}

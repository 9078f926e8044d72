package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Product{}, &catalog.Brand{}, &catalog.Category{})
	require.NoError(t, err)

	return db
}

func mustProduct(t *testing.T, sku, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(sku, name)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "sku-001", "Widget")
	require.NoError(t, repo.Save(ctx, product))

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "SKU-001", found.SKU)
		assert.Equal(t, "Widget", found.Name)
		assert.True(t, found.Status)
	})

	t.Run("by sku is case insensitive", func(t *testing.T) {
		found, err := repo.FindBySKU(ctx, "  sku-001 ")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, mustProduct(t, "X", "x").ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	for i, sku := range []string{"A-1", "A-2", "A-3"} {
		product := mustProduct(t, sku, "Product "+sku)
		if i == 2 {
			product.Deactivate()
		}
		require.NoError(t, repo.Save(ctx, product))
	}

	t.Run("status filter", func(t *testing.T) {
		active := true
		products, total, err := repo.FindAll(ctx, catalog.ProductFilter{Status: &active})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, products, 2)
	})

	t.Run("pagination", func(t *testing.T) {
		filter := catalog.ProductFilter{Filter: shared.Filter{Page: 2, Limit: 2, OrderBy: "name", OrderDir: "asc"}}
		products, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Product A-3", products[0].Name)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "DEL-1", "Doomed")
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), shared.ErrNotFound)

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBrandRepository(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormBrandRepository(db)
	ctx := context.Background()

	brand, err := catalog.NewBrand("Acme")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, brand))

	found, err := repo.FindByName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, brand.ID, found.ID)

	brands, total, err := repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, brands, 1)

	require.NoError(t, repo.Delete(ctx, brand.ID))
	_, err = repo.FindByID(ctx, brand.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormCategoryRepository(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	category, err := catalog.NewCategory("Hardware")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, category))

	found, err := repo.FindByName(ctx, "Hardware")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	_, err = repo.FindByName(ctx, "Nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

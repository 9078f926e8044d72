package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository backed by a mocked
// SQL connection, for asserting the generated Postgres SQL.
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindAll_NameFilterSQL(t *testing.T) {
	t.Run("name filter uses case-insensitive pattern match", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE name ILIKE \$1`).
			WithArgs("%widget%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "sku", "name", "status"}).
			AddRow(productID, now, now, "SKU-1", "Widget Alpha", true)
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE name ILIKE \$1 ORDER BY created_at DESC LIMIT \$2`).
			WithArgs("%widget%", 20).
			WillReturnRows(rows)

		filter := catalog.ProductFilter{Filter: shared.DefaultFilter(), Name: "widget"}
		products, total, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, productID, products[0].ID)
		assert.Equal(t, "Widget Alpha", products[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown order column falls back to created_at", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY created_at ASC LIMIT \$1`).
			WithArgs(20).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		filter := catalog.ProductFilter{Filter: shared.Filter{
			Page:     1,
			Limit:    20,
			OrderBy:  "sku; DROP TABLE products",
			OrderDir: "asc",
		}}
		products, total, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

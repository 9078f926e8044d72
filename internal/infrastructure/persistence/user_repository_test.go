package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hostbridge/backend/internal/domain/identity"
	"github.com/hostbridge/backend/internal/domain/shared"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&identity.User{})
	require.NoError(t, err)

	return db
}

func TestGormUserRepository(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("alice", "alice@example.com", "s3cret-pass", identity.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByUsername(ctx, "bob")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("save updates", func(t *testing.T) {
		user.IsActive = false
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})
}

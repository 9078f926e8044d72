package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hostbridge/backend/internal/domain/hostsession"
	"github.com/hostbridge/backend/internal/domain/shared"
)

func setupHostSessionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&hostsession.Session{})
	require.NoError(t, err)

	return db
}

func newSessionAt(t *testing.T, userID uuid.UUID, token string, issuedAt time.Time) *hostsession.Session {
	t.Helper()
	session, err := hostsession.NewSession(userID, "svc-user", token, `{"response":{}}`, nil)
	require.NoError(t, err)
	session.IssuedAt = issuedAt
	return session
}

func TestGormHostSessionRepository_SaveReplacesPerUser(t *testing.T) {
	db := setupHostSessionTestDB(t)
	repo := NewGormHostSessionRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := newSessionAt(t, userID, "token-1", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, repo.Save(ctx, first))

	second := newSessionAt(t, userID, "token-2", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, second))

	// one row per user, holding the newest token
	var count int64
	require.NoError(t, db.Model(&hostsession.Session{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "token-2", found.Token)
}

func TestGormHostSessionRepository_LatestToken(t *testing.T) {
	db := setupHostSessionTestDB(t)
	repo := NewGormHostSessionRepository(db)
	ctx := context.Background()

	t.Run("no sessions", func(t *testing.T) {
		_, err := repo.LatestToken(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("picks newest across users", func(t *testing.T) {
		older := newSessionAt(t, uuid.New(), "stale-token", time.Now().UTC().Add(-2*time.Hour))
		require.NoError(t, repo.Save(ctx, older))

		newer := newSessionAt(t, uuid.New(), "fresh-token", time.Now().UTC())
		require.NoError(t, repo.Save(ctx, newer))

		token, err := repo.LatestToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
	})

	t.Run("relogin by any user wins", func(t *testing.T) {
		relogin := newSessionAt(t, uuid.New(), "newest-token", time.Now().UTC().Add(time.Minute))
		require.NoError(t, repo.Save(ctx, relogin))

		token, err := repo.LatestToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "newest-token", token)
	})
}

func TestGormHostSessionRepository_FindByUserID(t *testing.T) {
	db := setupHostSessionTestDB(t)
	repo := NewGormHostSessionRepository(db)
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	userID := uuid.New()
	session := newSessionAt(t, userID, "token-x", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, "svc-user", found.Username)
}

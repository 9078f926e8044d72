package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hostbridge/backend/internal/domain/identity"
	"github.com/hostbridge/backend/internal/domain/shared"
	"github.com/hostbridge/backend/internal/infrastructure/auth"
	"github.com/hostbridge/backend/internal/infrastructure/config"
)

// memoryUserRepo is an in-memory identity.UserRepository for service tests
type memoryUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryUserRepo) Save(ctx context.Context, user *identity.User) error {
	r.users[user.ID] = user
	return nil
}

func newTestUserService() (*UserService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-at-least-32-characters!!",
		Expiration: time.Hour,
		Issuer:     "bridge-test",
		Audience:   "bridge-test-api",
	})
	return NewUserService(repo, jwtService, zap.NewNop()), repo
}

func TestUserService_Register(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, identity.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			Username: "alice",
			Email:    "other@example.com",
			Password: "password123",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			Username: "bob",
			Email:    "alice@example.com",
			Password: "password123",
		})
		require.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{
			Username: "carol",
			Email:    "carol@example.com",
			Password: "short",
		})
		require.Error(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     identity.RoleAdmin,
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, registered.ID, result.User.ID)
		assert.True(t, result.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "nobody", Password: "password123"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("deactivated account", func(t *testing.T) {
		user, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		user.IsActive = false

		_, err = svc.Login(ctx, LoginInput{Username: "alice", Password: "password123"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)

		user.IsActive = true
	})
}

func TestUserService_GetByID(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, registered.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = svc.GetByID(ctx, "not-a-uuid")
	require.Error(t, err)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

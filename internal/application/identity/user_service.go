package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hostbridge/backend/internal/domain/identity"
	"github.com/hostbridge/backend/internal/domain/shared"
	"github.com/hostbridge/backend/internal/infrastructure/auth"
)

// UserService handles local account operations: registration and login
// against the service's own user store, independent of the external host.
type UserService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *UserService {
	return &UserService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new local account
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*UserResponse, error) {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(input.Username, input.Email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	response := toUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues an access token
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return nil, err
	}

	if !user.CanLogin() {
		s.logger.Warn("Login attempt for inactive account", zap.String("username", input.Username))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, expiresAt, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// GetByID returns a single user
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := toUserResponse(user)
	return &response, nil
}

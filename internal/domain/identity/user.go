package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// Role names assignable to users
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a local account that can call the service and, through it,
// the external host.
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Role         string `gorm:"type:varchar(50);not null"`
	PasswordHash string `gorm:"type:text;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user with a bcrypt-hashed password
func NewUser(username, email, password, role string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if role == "" {
		role = RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanLogin reports whether the account is allowed to authenticate
func (u *User) CanLogin() bool {
	return u.IsActive
}

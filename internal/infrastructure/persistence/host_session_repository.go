package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hostbridge/backend/internal/domain/hostsession"
	"github.com/hostbridge/backend/internal/domain/shared"
)

// GormHostSessionRepository implements hostsession.Repository using GORM
type GormHostSessionRepository struct {
	db *gorm.DB
}

// NewGormHostSessionRepository creates a new GormHostSessionRepository
func NewGormHostSessionRepository(db *gorm.DB) *GormHostSessionRepository {
	return &GormHostSessionRepository{db: db}
}

// Save stores a session, replacing any previous session for the same user.
// The upsert runs in a transaction so a failed write leaves the old row intact.
func (r *GormHostSessionRepository) Save(ctx context.Context, session *hostsession.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "token", "issued_at", "expires_at", "raw_response",
			}),
		}).Create(session).Error
	})
}

// LatestToken returns the most recently issued token across all users
func (r *GormHostSessionRepository) LatestToken(ctx context.Context) (string, error) {
	var session hostsession.Session
	if err := r.db.WithContext(ctx).
		Order("issued_at DESC").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}
	return session.Token, nil
}

// FindByUserID returns the session owned by the given user
func (r *GormHostSessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*hostsession.Session, error) {
	var session hostsession.Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Ensure GormHostSessionRepository implements hostsession.Repository
var _ hostsession.Repository = (*GormHostSessionRepository)(nil)

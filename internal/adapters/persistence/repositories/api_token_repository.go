package repositories

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// apiTokenRepository implements ApiTokenRepository interface
type apiTokenRepository struct {
	db *gorm.DB
}

// NewApiTokenRepository creates a new api token repository
func NewApiTokenRepository(db *gorm.DB) ApiTokenRepository {
	return &apiTokenRepository{db: db}
}

// GetByUserID gets the most recently created token for a user
func (r *apiTokenRepository) GetByUserID(ctx context.Context, userID uint) (*models.ApiToken, error) {
	var token models.ApiToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Upsert saves a token keyed by user identity: the existing row is updated
// in place when one exists, otherwise a new row is inserted
func (r *apiTokenRepository) Upsert(ctx context.Context, userID uint, token string, expiresAt time.Time) (*models.ApiToken, error) {
	var existing models.ApiToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&existing).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record := &models.ApiToken{
			UserID:    userID,
			Token:     token,
			ExpiresAt: expiresAt,
		}
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	}

	existing.Token = token
	existing.ExpiresAt = expiresAt
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// DeleteByUserID removes the stored token for a user
func (r *apiTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ApiToken{}).Error
}

// ListExpiringWithin lists tokens that are already expired or expire inside
// the given window, for the daily warning scan
func (r *apiTokenRepository) ListExpiringWithin(ctx context.Context, window time.Duration) ([]*models.ApiToken, error) {
	var tokens []*models.ApiToken
	cutoff := time.Now().Add(window)
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

package repositories

import (
	"context"
	"time"

	"frontdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// noticeRepository implements NoticeRepository interface
type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

// Create creates a new notice
func (r *noticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

// GetByID gets a notice by ID
func (r *noticeRepository) GetByID(ctx context.Context, id uint) (*models.Notice, error) {
	var notice models.Notice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&notice).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListActiveByUserID lists undismissed notices for a user, newest first
func (r *noticeRepository) ListActiveByUserID(ctx context.Context, userID uint) ([]*models.Notice, error) {
	var notices []*models.Notice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND dismissed_at IS NULL", userID).
		Order("created_at DESC").
		Find(&notices).Error
	if err != nil {
		return nil, err
	}
	return notices, nil
}

// ExistsActive checks whether an undismissed notice with the given code
// already exists for a user
func (r *noticeRepository) ExistsActive(ctx context.Context, userID uint, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notice{}).
		Where("user_id = ? AND code = ? AND dismissed_at IS NULL", userID, code).
		Count(&count).Error
	return count > 0, err
}

// Dismiss marks a notice as dismissed
func (r *noticeRepository) Dismiss(ctx context.Context, id uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&models.Notice{}).
		Where("id = ?", id).
		Update("dismissed_at", now).Error
}

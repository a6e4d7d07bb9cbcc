package repositories

import (
	"context"

	"frontdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// enquiryRepository implements EnquiryRepository interface
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

// Create creates a new enquiry
func (r *enquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

// GetByID gets an enquiry by ID
func (r *enquiryRepository) GetByID(ctx context.Context, id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&enquiry).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// ListByUserID lists enquiries for an operator with pagination, newest first
func (r *enquiryRepository) ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]*models.Enquiry, int64, error) {
	var enquiries []*models.Enquiry
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Enquiry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&enquiries).Error; err != nil {
		return nil, 0, err
	}

	return enquiries, total, nil
}

// MarkRead marks an enquiry as read
func (r *enquiryRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Enquiry{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

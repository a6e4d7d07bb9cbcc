package repositories

import (
	"context"
	"time"

	"frontdesk/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ApiTokenRepository defines the channel manager token store.
// Each user owns at most one token row; Upsert updates in place when a row
// exists and inserts otherwise.
type ApiTokenRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.ApiToken, error)
	Upsert(ctx context.Context, userID uint, token string, expiresAt time.Time) (*models.ApiToken, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	ListExpiringWithin(ctx context.Context, window time.Duration) ([]*models.ApiToken, error)
}

// EnquiryRepository defines enquiry repository interface
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
	GetByID(ctx context.Context, id uint) (*models.Enquiry, error)
	ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]*models.Enquiry, int64, error)
	MarkRead(ctx context.Context, id uint) error
}

// NoticeRepository defines notice repository interface
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetByID(ctx context.Context, id uint) (*models.Notice, error)
	ListActiveByUserID(ctx context.Context, userID uint) ([]*models.Notice, error)
	ExistsActive(ctx context.Context, userID uint, code string) (bool, error)
	Dismiss(ctx context.Context, id uint) error
}

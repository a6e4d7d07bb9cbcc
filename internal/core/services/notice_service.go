package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/adapters/persistence/repositories"
	"frontdesk/internal/core/domain"

	"gorm.io/gorm"
)

// NoticeService manages dismissable dashboard notices
type NoticeService struct {
	noticeRepo repositories.NoticeRepository
}

// NewNoticeService creates a new notice service
func NewNoticeService(noticeRepo repositories.NoticeRepository) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo}
}

// List returns the active (undismissed) notices for a user, newest first
func (s *NoticeService) List(ctx context.Context, userID uint) ([]*models.Notice, error) {
	return s.noticeRepo.ListActiveByUserID(ctx, userID)
}

// Dismiss dismisses a notice after checking it belongs to the user
func (s *NoticeService) Dismiss(ctx context.Context, userID, noticeID uint) error {
	notice, err := s.noticeRepo.GetByID(ctx, noticeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if notice.UserID != userID {
		return domain.ErrForbidden
	}
	if notice.IsDismissed() {
		return nil
	}

	return s.noticeRepo.Dismiss(ctx, noticeID)
}

// FileTokenExpiryNotice files a token expiry notice for a user unless an
// active notice with the same code already exists. Dismissing a notice does
// not stop a new one from being filed on a later scan.
func (s *NoticeService) FileTokenExpiryNotice(ctx context.Context, userID uint, expiresAt time.Time, expired bool) error {
	code := models.NoticeCodeTokenExpiring
	level := models.NoticeLevelWarning
	message := fmt.Sprintf("Your channel manager token expires on %s. Save a fresh token in Settings to avoid interruptions.",
		expiresAt.Format("2006-01-02 15:04"))
	if expired {
		code = models.NoticeCodeTokenExpired
		level = models.NoticeLevelError
		message = "Your channel manager token has expired. Dashboard data is unavailable until you save a fresh token in Settings."
	}

	exists, err := s.noticeRepo.ExistsActive(ctx, userID, code)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	notice := &models.Notice{
		UserID:  userID,
		Level:   level,
		Code:    code,
		Message: message,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return err
	}

	log.Printf("✅ Filed %s notice for user ID: %d", code, userID)
	return nil
}

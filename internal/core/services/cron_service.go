package services

import (
	"context"
	"log"
	"time"

	"frontdesk/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// tokenExpiryWindow is how far ahead the daily scan looks for tokens that
// are about to expire
const tokenExpiryWindow = 48 * time.Hour

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	tokenRepo        repositories.ApiTokenRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	notices          *NoticeService
}

// NewCronService creates a new cron service with its own repositories
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:             cron.New(),
		tokenRepo:        repositories.NewApiTokenRepository(db),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
		notices:          NewNoticeService(repositories.NewNoticeRepository(db)),
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	// Daily 08:30: warn operators whose channel manager tokens are close to
	// expiry, and clean out expired refresh tokens
	if _, err := s.cron.AddFunc("30 8 * * *", func() {
		s.ScanTokenExpiry(context.Background())
		s.CleanupRefreshTokens(context.Background())
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron service started (daily token expiry scan at 08:30)")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron service stopped")
}

// ScanTokenExpiry files notices for every token that is expired or expires
// within the warning window
func (s *CronService) ScanTokenExpiry(ctx context.Context) {
	tokens, err := s.tokenRepo.ListExpiringWithin(ctx, tokenExpiryWindow)
	if err != nil {
		log.Printf("❌ Token expiry scan failed: %v", err)
		return
	}

	for _, token := range tokens {
		if err := s.notices.FileTokenExpiryNotice(ctx, token.UserID, token.ExpiresAt, token.IsExpired()); err != nil {
			log.Printf("❌ Failed to file token notice for user ID %d: %v", token.UserID, err)
		}
	}

	if len(tokens) > 0 {
		log.Printf("✅ Token expiry scan complete: %d token(s) in the warning window", len(tokens))
	}
}

// CleanupRefreshTokens deletes expired refresh tokens
func (s *CronService) CleanupRefreshTokens(ctx context.Context) {
	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Refresh token cleanup failed: %v", err)
		return
	}
	log.Println("✅ Expired refresh tokens cleaned up")
}

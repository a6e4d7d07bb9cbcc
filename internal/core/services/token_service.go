package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/adapters/persistence/repositories"
	"frontdesk/internal/core/domain"

	"gorm.io/gorm"
)

// ExpiryBuffer is the safety margin before a cached token is considered
// too close to expiry to use without consulting the store. The buffer is
// enforced by the cache, not the store: a stored token inside the buffer
// but not yet past its expiry is still usable.
const ExpiryBuffer = 5 * time.Minute

// cachedToken holds one cache entry
type cachedToken struct {
	token     string
	expiresAt time.Time
}

// TokenCache is a process-wide in-memory cache of channel manager tokens,
// keyed by user. It is injected into TokenService so tests can observe and
// replace it. Lifecycle: empty at start, populated on first successful read,
// invalidated by any save, never torn down.
type TokenCache struct {
	mu      sync.RWMutex
	entries map[uint]cachedToken
}

// NewTokenCache creates an empty token cache
func NewTokenCache() *TokenCache {
	return &TokenCache{entries: make(map[uint]cachedToken)}
}

// Get returns the cached token and expiry for a user
func (c *TokenCache) Get(userID uint) (string, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[userID]
	return entry.token, entry.expiresAt, ok
}

// Set stores a token for a user
func (c *TokenCache) Set(userID uint, token string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = cachedToken{token: token, expiresAt: expiresAt}
}

// Invalidate drops the cached token for a user
func (c *TokenCache) Invalidate(userID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}

// TokenService supplies a currently-valid bearer token for the channel
// manager API while minimizing store round-trips
type TokenService struct {
	tokenRepo repositories.ApiTokenRepository
	cache     *TokenCache
}

// NewTokenService creates a new token service
func NewTokenService(tokenRepo repositories.ApiTokenRepository, cache *TokenCache) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		cache:     cache,
	}
}

// TokenStatus describes the stored token without exposing its value
type TokenStatus struct {
	Configured bool       `json:"configured"`
	Expired    bool       `json:"expired"`
	Expiring   bool       `json:"expiring"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// GetToken returns a usable token for the user.
//
// A cached token whose expiry is more than five minutes away is returned
// without touching the store. Otherwise the store is read; a missing row
// fails with ErrTokenNotConfigured, a past-expiry row with ErrTokenExpired
// (the stale value is never returned) and a read failure with
// ErrStoreUnavailable. There is no refresh flow: expiry always requires the
// operator to save a fresh token.
func (s *TokenService) GetToken(ctx context.Context, userID uint) (string, error) {
	if token, expiresAt, ok := s.cache.Get(userID); ok && time.Until(expiresAt) > ExpiryBuffer {
		return token, nil
	}

	record, err := s.tokenRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrTokenNotConfigured
		}
		return "", fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if record.IsExpired() {
		return "", domain.ErrTokenExpired
	}

	s.cache.Set(userID, record.Token, record.ExpiresAt)
	return record.Token, nil
}

// SaveToken persists a token for the user, invalidating the cache first.
// The save is an upsert keyed by user identity: each user keeps at most one
// token row.
func (s *TokenService) SaveToken(ctx context.Context, userID uint, token string, expiresAt time.Time) (*models.ApiToken, error) {
	s.cache.Invalidate(userID)

	record, err := s.tokenRepo.Upsert(ctx, userID, token, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	log.Printf("✅ Channel manager token saved for user ID: %d (expires %s)", userID, expiresAt.Format(time.RFC3339))
	return record, nil
}

// DeleteToken removes the stored token for the user and drops the cache entry
func (s *TokenService) DeleteToken(ctx context.Context, userID uint) error {
	s.cache.Invalidate(userID)

	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Status reports the stored token state for the settings screen
func (s *TokenService) Status(ctx context.Context, userID uint) (*TokenStatus, error) {
	record, err := s.tokenRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &TokenStatus{Configured: false}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	expiresAt := record.ExpiresAt
	return &TokenStatus{
		Configured: true,
		Expired:    record.IsExpired(),
		Expiring:   !record.IsExpired() && record.ExpiresWithin(48*time.Hour),
		ExpiresAt:  &expiresAt,
	}, nil
}

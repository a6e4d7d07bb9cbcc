package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeTokenRepo is an in-memory ApiTokenRepository that counts store reads
type fakeTokenRepo struct {
	tokens   map[uint]*models.ApiToken
	getCalls int
	failing  bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uint]*models.ApiToken)}
}

func (r *fakeTokenRepo) GetByUserID(ctx context.Context, userID uint) (*models.ApiToken, error) {
	r.getCalls++
	if r.failing {
		return nil, errors.New("connection refused")
	}
	token, ok := r.tokens[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}

func (r *fakeTokenRepo) Upsert(ctx context.Context, userID uint, token string, expiresAt time.Time) (*models.ApiToken, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	existing, ok := r.tokens[userID]
	if ok {
		existing.Token = token
		existing.ExpiresAt = expiresAt
		return existing, nil
	}
	record := &models.ApiToken{ID: uint(len(r.tokens) + 1), UserID: userID, Token: token, ExpiresAt: expiresAt}
	r.tokens[userID] = record
	return record, nil
}

func (r *fakeTokenRepo) DeleteByUserID(ctx context.Context, userID uint) error {
	delete(r.tokens, userID)
	return nil
}

func (r *fakeTokenRepo) ListExpiringWithin(ctx context.Context, window time.Duration) ([]*models.ApiToken, error) {
	cutoff := time.Now().Add(window)
	var out []*models.ApiToken
	for _, token := range r.tokens {
		if token.ExpiresAt.Before(cutoff) {
			out = append(out, token)
		}
	}
	return out, nil
}

func TestGetTokenCacheHitSkipsStore(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "tok-1", ExpiresAt: time.Now().Add(24 * time.Hour)}
	svc := NewTokenService(repo, NewTokenCache())

	// First read populates the cache
	token, err := svc.GetToken(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, repo.getCalls)

	// Second read must be served from cache
	token, err = svc.GetToken(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetTokenWithinExpiryBufferRereadsStore(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "tok-1", ExpiresAt: time.Now().Add(2 * time.Minute)}
	cache := NewTokenCache()
	svc := NewTokenService(repo, cache)

	// Cached token expiring inside the buffer is not trusted
	cache.Set(1, "stale", time.Now().Add(2*time.Minute))

	token, err := svc.GetToken(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetTokenNotConfigured(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo(), NewTokenCache())

	_, err := svc.GetToken(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrTokenNotConfigured)
}

func TestGetTokenExpired(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}
	svc := NewTokenService(repo, NewTokenCache())

	token, err := svc.GetToken(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.Empty(t, token)
}

func TestGetTokenStoreFailure(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.failing = true
	svc := NewTokenService(repo, NewTokenCache())

	_, err := svc.GetToken(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestSaveTokenInvalidatesCache(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "old", ExpiresAt: time.Now().Add(24 * time.Hour)}
	cache := NewTokenCache()
	svc := NewTokenService(repo, cache)

	// Warm the cache
	_, err := svc.GetToken(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.SaveToken(context.Background(), 1, "new", time.Now().Add(48*time.Hour))
	require.NoError(t, err)

	token, err := svc.GetToken(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestStatusReportsExpiring(t *testing.T) {
	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "tok", ExpiresAt: time.Now().Add(12 * time.Hour)}
	svc := NewTokenService(repo, NewTokenCache())

	status, err := svc.Status(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.Configured)
	assert.False(t, status.Expired)
	assert.True(t, status.Expiring)
}

func TestStatusNotConfigured(t *testing.T) {
	svc := NewTokenService(newFakeTokenRepo(), NewTokenCache())

	status, err := svc.Status(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, status.Configured)
	assert.Nil(t, status.ExpiresAt)
}

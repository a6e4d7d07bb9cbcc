package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBeds24(t *testing.T, handler http.HandlerFunc) (*Beds24Service, *fakeTokenRepo, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo := newFakeTokenRepo()
	repo.tokens[1] = &models.ApiToken{UserID: 1, Token: "valid-token", ExpiresAt: time.Now().Add(24 * time.Hour)}

	svc := NewBeds24Service(NewTokenService(repo, NewTokenCache()), Beds24Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return svc, repo, server
}

func TestRequestSendsBearerToken(t *testing.T) {
	var gotAuth string
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, err := svc.Request(context.Background(), 1, http.MethodGet, "/properties", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer valid-token", gotAuth)
}

func TestRequest401IsAuthRejectedRegardlessOfBody(t *testing.T) {
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`not even json`))
	})

	_, err := svc.Request(context.Background(), 1, http.MethodGet, "/properties", nil)
	assert.ErrorIs(t, err, domain.ErrAuthRejected)
}

func TestRequestTokenErrorBodyIsAuthRejected(t *testing.T) {
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"invalid token provided"}`))
	})

	_, err := svc.Request(context.Background(), 1, http.MethodGet, "/properties", nil)
	assert.ErrorIs(t, err, domain.ErrAuthRejected)
}

func TestRequestUpstreamErrorIsAPIError(t *testing.T) {
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := svc.Request(context.Background(), 1, http.MethodGet, "/properties", nil)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestRequestTokenFailureSkipsNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	// Repo with no stored token
	svc := NewBeds24Service(NewTokenService(newFakeTokenRepo(), NewTokenCache()), Beds24Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	_, err := svc.Request(context.Background(), 1, http.MethodGet, "/properties", nil)
	assert.ErrorIs(t, err, domain.ErrTokenNotConfigured)
	assert.Zero(t, hits)
}

func TestGetBookingsUnwrapsEnvelopeAndLowercasesStatus(t *testing.T) {
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":10,"propertyId":5,"checkIn":"2026-08-01","checkOut":"2026-08-04","status":"Confirmed","channel":"Airbnb","totalCost":300}
		]}`))
	})

	bookings, err := svc.GetBookings(context.Background(), 1, BookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "confirmed", bookings[0].Status)
	assert.Equal(t, "Airbnb", bookings[0].Channel)
}

func TestGetPropertyNotFound(t *testing.T) {
	svc, _, _ := newTestBeds24(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":2,"name":"Other"}]}`))
	})

	_, err := svc.GetProperty(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

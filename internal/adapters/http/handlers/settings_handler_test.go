package handlers

import (
	"net/http"
	"testing"
	"time"
)

func TestTokenLifecycle(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")
	_, token := createTestUser(t, env, "owner@example.com", "OWNER")

	// No token configured yet
	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/settings/token", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)
	body := decodeJSONMap(t, resp)
	data, _ := body["data"].(map[string]any)
	if configured, _ := data["configured"].(bool); configured {
		t.Fatal("expected configured=false before any save")
	}

	// Save a token
	resp = performJSONRequest(t, env.app, http.MethodPut, "/api/v1/settings/token", map[string]any{
		"token":      "beds24-token-abc",
		"expires_at": time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	}, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)

	resp = performJSONRequest(t, env.app, http.MethodGet, "/api/v1/settings/token", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)
	body = decodeJSONMap(t, resp)
	data, _ = body["data"].(map[string]any)
	if configured, _ := data["configured"].(bool); !configured {
		t.Fatal("expected configured=true after save")
	}
	if expired, _ := data["expired"].(bool); expired {
		t.Fatal("expected expired=false for a fresh token")
	}

	// Delete it again
	resp = performJSONRequest(t, env.app, http.MethodDelete, "/api/v1/settings/token", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)

	resp = performJSONRequest(t, env.app, http.MethodGet, "/api/v1/settings/token", nil, authHeaders(token))
	body = decodeJSONMap(t, resp)
	data, _ = body["data"].(map[string]any)
	if configured, _ := data["configured"].(bool); configured {
		t.Fatal("expected configured=false after delete")
	}
}

func TestSaveTokenValidation(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")
	_, token := createTestUser(t, env, "owner@example.com", "OWNER")

	cases := []map[string]any{
		{"expires_at": time.Now().Add(time.Hour).Format(time.RFC3339)},            // no token
		{"token": "abc"},                                                          // no expiry
		{"token": "abc", "expires_at": "not-a-timestamp"},                         // bad expiry
		{"token": "abc", "expires_at": time.Now().Add(-time.Hour).Format(time.RFC3339)}, // past expiry
	}
	for _, payload := range cases {
		resp := performJSONRequest(t, env.app, http.MethodPut, "/api/v1/settings/token", payload, authHeaders(token))
		assertStatus(t, resp, http.StatusBadRequest)
	}
}

func TestPropertiesWithoutTokenIsPreconditionFailed(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")
	_, token := createTestUser(t, env, "owner@example.com", "OWNER")

	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/properties/", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusPreconditionFailed)
}

func TestPropertiesWithExpiredTokenIsUnauthorized(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")
	user, token := createTestUser(t, env, "owner@example.com", "OWNER")
	saveChannelToken(t, env, user.ID, "stale", time.Now().Add(-time.Hour))

	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/properties/", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusUnauthorized)
}

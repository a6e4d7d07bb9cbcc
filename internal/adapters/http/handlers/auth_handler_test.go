package handlers

import (
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")

	resp := performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Alice Operator",
		"email":    "alice@example.com",
		"password": "longenoughpw",
	}, nil)
	assertStatus(t, resp, http.StatusCreated)

	body := decodeJSONMap(t, resp)
	data, _ := body["data"].(map[string]any)
	if data["access_token"] == "" {
		t.Fatal("expected access token in register response")
	}
	user, _ := data["user"].(map[string]any)
	if user["role"] != "OWNER" {
		t.Fatalf("expected self-registered user to be OWNER, got %v", user["role"])
	}

	// Duplicate email rejected
	resp = performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "longenoughpw",
	}, nil)
	assertStatus(t, resp, http.StatusConflict)

	// Login with correct credentials
	resp = performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "longenoughpw",
	}, nil)
	assertStatus(t, resp, http.StatusOK)

	// Login with wrong password
	resp = performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, nil)
	assertStatus(t, resp, http.StatusUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")

	cases := []map[string]any{
		{"email": "a@b.com", "password": "longenoughpw"},                     // no name
		{"name": "A", "password": "longenoughpw"},                            // no email
		{"name": "A", "email": "not-an-email", "password": "longenoughpw"},   // bad email
		{"name": "A", "email": "a@b.com", "password": "short"},               // short password
	}
	for _, payload := range cases {
		resp := performJSONRequest(t, env.app, http.MethodPost, "/api/v1/auth/register", payload, nil)
		assertStatus(t, resp, http.StatusBadRequest)
	}
}

func TestMeRequiresAuth(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")

	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/auth/me", nil, nil)
	assertStatus(t, resp, http.StatusUnauthorized)

	_, token := createTestUser(t, env, "bob@example.com", "OWNER")
	resp = performJSONRequest(t, env.app, http.MethodGet, "/api/v1/auth/me", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)

	body := decodeJSONMap(t, resp)
	data, _ := body["data"].(map[string]any)
	user, _ := data["user"].(map[string]any)
	if user["email"] != "bob@example.com" {
		t.Fatalf("expected bob@example.com, got %v", user["email"])
	}
}

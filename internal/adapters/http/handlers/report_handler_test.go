package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestRevenueReport(t *testing.T) {
	stub := newChannelStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"propertyId":5,"checkIn":"2026-08-03","checkOut":"2026-08-06","status":"confirmed","totalCost":300},
			{"id":2,"propertyId":5,"checkIn":"2026-08-10","checkOut":"2026-08-12","status":"confirmed","totalCost":150},
			{"id":3,"propertyId":5,"checkIn":"2026-08-15","checkOut":"2026-08-17","status":"cancelled","totalCost":999}
		]}`))
	})

	env := setupTestEnv(t, stub.URL)
	user, token := createTestUser(t, env, "owner@example.com", "OWNER")
	saveChannelToken(t, env, user.ID, "valid", time.Now().Add(72*time.Hour))

	// Month 7 is August
	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/reports/revenue?month=7&year=2026", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)

	body := decodeJSONMap(t, resp)
	data, _ := body["data"].(map[string]any)
	if total, _ := data["total"].(float64); total != 450 {
		t.Fatalf("expected total 450, got %v", data["total"])
	}
	if bookings, _ := data["bookings"].(float64); bookings != 2 {
		t.Fatalf("expected 2 bookings, got %v", data["bookings"])
	}
}

func TestRevenueReportMonthValidation(t *testing.T) {
	env := setupTestEnv(t, "http://unused.invalid")
	_, token := createTestUser(t, env, "owner@example.com", "OWNER")

	for _, query := range []string{"", "month=12", "month=-1", "month=abc"} {
		resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/reports/revenue?"+query, nil, authHeaders(token))
		assertStatus(t, resp, http.StatusBadRequest)
	}
}

func TestChannelReportUpstreamFailureIsBadGateway(t *testing.T) {
	stub := newChannelStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"maintenance"}`))
	})

	env := setupTestEnv(t, stub.URL)
	user, token := createTestUser(t, env, "owner@example.com", "OWNER")
	saveChannelToken(t, env, user.ID, "valid", time.Now().Add(72*time.Hour))

	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/reports/channels", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusBadGateway)

	body := decodeJSONMap(t, resp)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "maintenance") {
		t.Fatalf("expected upstream message to surface, got %q", msg)
	}
}

func TestChannelReportPercentages(t *testing.T) {
	stub := newChannelStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"checkIn":"2026-08-03","checkOut":"2026-08-06","status":"confirmed","channel":"airbnb"},
			{"id":2,"checkIn":"2026-08-10","checkOut":"2026-08-12","status":"confirmed","channel":"airbnb"},
			{"id":3,"checkIn":"2026-08-15","checkOut":"2026-08-17","status":"confirmed"}
		]}`))
	})

	env := setupTestEnv(t, stub.URL)
	user, token := createTestUser(t, env, "owner@example.com", "OWNER")
	saveChannelToken(t, env, user.ID, "valid", time.Now().Add(72*time.Hour))

	resp := performJSONRequest(t, env.app, http.MethodGet, "/api/v1/reports/channels?percent=true", nil, authHeaders(token))
	assertStatus(t, resp, http.StatusOK)

	body := decodeJSONMap(t, resp)
	groups, _ := body["data"].([]any)
	if len(groups) != 2 {
		t.Fatalf("expected 2 channel groups, got %d", len(groups))
	}
	first, _ := groups[0].(map[string]any)
	if first["name"] != "airbnb" || first["value"].(float64) != 67 {
		t.Fatalf("expected airbnb at 67%%, got %v", first)
	}
	second, _ := groups[1].(map[string]any)
	if second["name"] != "Direto" || second["value"].(float64) != 33 {
		t.Fatalf("expected Direto at 33%%, got %v", second)
	}
}

package e2e

import (
	"net/http"
	"testing"
)

func TestBaseURL(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodGet, "/", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	body := parseJSON(t, resp)
	if _, ok := body["timestamp"]; !ok {
		t.Error("expected 'timestamp' field in response")
	}
}

func TestHealth(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodGet, "/health", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	body := parseJSON(t, resp)
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}
	services, ok := body["services"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'services' field in response")
	}
	if services["redis"] != false {
		t.Errorf("expected redis false without a client, got %v", services["redis"])
	}
	if body["previewSessions"] != float64(0) {
		t.Errorf("expected 0 preview sessions, got %v", body["previewSessions"])
	}
}

func TestUnknownRoute(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodGet, "/api/nope", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusNotFound)
	if code := errorCode(parseJSON(t, resp)); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", code)
	}
}

func TestPreviewRequiresUpgrade(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodGet, "/ws/preview", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusUpgradeRequired)
}

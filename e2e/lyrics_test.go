package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestLyricsValidate_Clean(t *testing.T) {
	ta := setupApp(t, false)

	body, _ := json.Marshal(map[string]string{"lyrics": "[Verse]\nEu vou embora\n\n[Chorus]\nVolta pra mim"})
	resp, err := doRequest(ta.app, http.MethodPost, "/api/lyrics/validate", string(body), nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["isValid"] != true {
		t.Errorf("expected isValid true, got %v", result["isValid"])
	}
	if warnings, ok := result["warnings"].([]interface{}); !ok || len(warnings) != 0 {
		t.Errorf("expected empty warnings array, got %v", result["warnings"])
	}
}

func TestLyricsValidate_ProductionTerm(t *testing.T) {
	ta := setupApp(t, false)

	body, _ := json.Marshal(map[string]string{"lyrics": "[Verse]\nsolo de guitarra no fim"})
	resp, err := doRequest(ta.app, http.MethodPost, "/api/lyrics/validate", string(body), nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["isValid"] != false {
		t.Errorf("expected isValid false, got %v", result["isValid"])
	}
	warnings, _ := result["warnings"].([]interface{})
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	first, _ := warnings[0].(map[string]interface{})
	if first["line"] != float64(2) || first["term"] != "solo" {
		t.Errorf("unexpected first warning %v", first)
	}
	if msg, _ := first["message"].(string); !strings.Contains(msg, `"solo"`) {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestLyricsValidate_InstrumentalSection(t *testing.T) {
	ta := setupApp(t, false)

	body, _ := json.Marshal(map[string]string{"lyrics": "[Instrumental]\nla la la\n[Chorus]\nla la la"})
	resp, err := doRequest(ta.app, http.MethodPost, "/api/lyrics/validate", string(body), nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	warnings, _ := result["warnings"].([]interface{})
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	first, _ := warnings[0].(map[string]interface{})
	if first["kind"] != "instrumental" || first["line"] != float64(2) {
		t.Errorf("unexpected warning %v", first)
	}
}

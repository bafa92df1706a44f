package e2e

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestGeneratePrompt_Success(t *testing.T) {
	ta := setupApp(t, false)

	body := `{
		"language": "pt-BR",
		"genre": "  pop   rock ",
		"reference": "Anitta",
		"voiceType": "Feminina",
		"emotionMain": "saudade",
		"tempo": "Lento",
		"styleLevel": "minimal"
	}`

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	prompt, _ := result["prompt"].(string)
	if !strings.Contains(prompt, "- Gênero: pop rock") {
		t.Errorf("expected normalized genre in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Idioma: Português (Brasil)") {
		t.Error("expected language label in prompt")
	}

	derived, _ := result["derivedName"].(string)
	if derived == "" || derived == "Anitta" {
		t.Errorf("expected a derived name distinct from the reference, got %q", derived)
	}

	style, _ := result["style"].(string)
	if !strings.Contains(style, "melancholic") || !strings.Contains(style, "inspired by "+derived) {
		t.Errorf("unexpected style %q", style)
	}
	if result["status"] != "Pronto. Agora copie e cole aqui no chat." {
		t.Errorf("unexpected status %v", result["status"])
	}
}

func TestGeneratePrompt_MissingGenre(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", `{"theme": "estrada"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	missing, ok := result["missing"].([]interface{})
	if !ok || len(missing) != 1 || missing[0] != "Gênero musical" {
		t.Errorf("expected missing genre, got %v", result["missing"])
	}
	if status, _ := result["status"].(string); !strings.HasPrefix(status, "Faltando: Gênero musical") {
		t.Errorf("unexpected status %q", status)
	}
}

func TestGeneratePrompt_InvalidLevel(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", `{"genre": "pop", "styleLevel": "maximal"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
	if code := errorCode(parseJSON(t, resp)); code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %q", code)
	}
}

func TestGeneratePrompt_InvalidBody(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", `{"genre": `, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
}

func TestGeneratePrompt_AuthRequired(t *testing.T) {
	ta := setupApp(t, true)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", `{"genre": "pop"}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusUnauthorized)

	resp, err = doAuthRequest(t, ta.app, http.MethodPost, "/api/prompt/generate", `{"genre": "pop"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
}

func TestGeneratePrompt_BadToken(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/generate", `{"genre": "pop"}`, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusUnauthorized)
}

func TestBatch_Success(t *testing.T) {
	ta := setupApp(t, false)

	body := `{"items": [{"genre": "rock"}, {}, {"genre": "samba"}]}`
	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/batch", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	items, ok := result["results"].([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 results, got %v", result["results"])
	}
	second, _ := items[1].(map[string]interface{})
	if missing, _ := second["missing"].([]interface{}); len(missing) != 1 {
		t.Errorf("expected the empty item to report missing genre, got %v", second["missing"])
	}
	third, _ := items[2].(map[string]interface{})
	if style, _ := third["style"].(string); !strings.Contains(style, "samba") {
		t.Errorf("expected results in request order, got style %q", style)
	}
}

func TestBatch_Empty(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/batch", `{"items": []}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
}

func TestBatch_TooLarge(t *testing.T) {
	ta := setupApp(t, false)

	items := make([]string, 51)
	for i := range items {
		items[i] = `{"genre": "pop"}`
	}
	body := fmt.Sprintf(`{"items": [%s]}`, strings.Join(items, ","))

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/batch", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusRequestEntityTooLarge)
}

func TestBatch_ItemValidation(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/prompt/batch", `{"items": [{"genre": "pop"}, {"styleLevel": "huge"}]}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)

	body := parseJSON(t, resp)
	detail, _ := body["error"].(map[string]interface{})
	fields, _ := detail["details"].(map[string]interface{})
	if fields["Items[1].StyleLevel"] != "oneof" {
		t.Errorf("expected Items[1].StyleLevel oneof, got %v", fields)
	}
}

func TestStyleOptimize(t *testing.T) {
	ta := setupApp(t, false)

	body := `{"genre": "sertanejo", "tempo": "Rápido", "styleLevel": "detailed", "style": "romântico"}`
	resp, err := doRequest(ta.app, http.MethodPost, "/api/style/optimize", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["level"] != "detailed" {
		t.Errorf("expected level detailed, got %v", result["level"])
	}
	style, _ := result["style"].(string)
	if !strings.Contains(style, "brazilian country") {
		t.Errorf("expected mapped genre, got %q", style)
	}
}

func TestFormDefaults(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodGet, "/api/form/defaults", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["language"] != "pt-BR" {
		t.Errorf("expected language pt-BR, got %v", result["language"])
	}
	if result["styleLevel"] != "optimized" {
		t.Errorf("expected styleLevel optimized, got %v", result["styleLevel"])
	}
	if result["metatags"] != true {
		t.Errorf("expected metatags true, got %v", result["metatags"])
	}
}

func TestArtistSimilar(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/artist/similar", `{"name": "Djavan", "count": 3}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if similar, _ := result["similar"].(string); similar == "" || similar == "Djavan" {
		t.Errorf("unexpected similar name %q", similar)
	}
	if variants, _ := result["variants"].([]interface{}); len(variants) != 2 {
		t.Errorf("expected 2 variants, got %v", result["variants"])
	}
}

func TestArtistSimilar_MissingName(t *testing.T) {
	ta := setupApp(t, false)

	resp, err := doRequest(ta.app, http.MethodPost, "/api/artist/similar", `{}`, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusBadRequest)
}

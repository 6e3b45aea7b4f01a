package nlg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/protonsvc/rasa-nlg/internal/db"
	"github.com/protonsvc/rasa-nlg/internal/responses"
)

func setupNLGRouter(t *testing.T, pick Picker) (chi.Router, *responses.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	respStore := responses.NewStore(database)
	r := chi.NewRouter()
	RegisterRoutes(r, respStore, NewSelector(pick))
	return r, respStore
}

func postNLG(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/nlg/bots/b1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleSelect(t *testing.T) {
	r, respStore := setupNLGRouter(t, func() float64 { return 0 })
	respStore.Upsert(context.Background(), "b1", "utter_greet",
		json.RawMessage(`[{"text":"hey","channel":"slack"},{"text":"hello"}]`))

	w := postNLG(t, r, `{"response":"utter_greet","channel":{"name":"slack"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var chosen map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &chosen); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if chosen["text"] != "hey" || chosen["channel"] != "slack" {
		t.Errorf("unexpected variation %v", chosen)
	}
}

func TestHandleSelectTemplateFallback(t *testing.T) {
	r, respStore := setupNLGRouter(t, func() float64 { return 0 })
	respStore.Upsert(context.Background(), "b1", "utter_greet",
		json.RawMessage(`[{"text":"hello"}]`))

	// Older Rasa versions send "template" instead of "response".
	w := postNLG(t, r, `{"template":"utter_greet"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandleSelectMissingResponse(t *testing.T) {
	r, _ := setupNLGRouter(t, nil)

	w := postNLG(t, r, `{"response":"utter_ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleSelectNoVariationAvailable(t *testing.T) {
	r, respStore := setupNLGRouter(t, nil)
	respStore.Upsert(context.Background(), "b1", "utter_greet",
		json.RawMessage(`[{"text":"hey","channel":"slack"}]`))

	// Every variation is tagged for another channel: no candidates.
	w := postNLG(t, r, `{"response":"utter_greet","channel":{"name":"web"}}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var envelope map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope["message"] != "No variation available for response 'utter_greet'" {
		t.Errorf("unexpected message %v", envelope["message"])
	}
}

func TestHandleSelectMalformedBody(t *testing.T) {
	r, _ := setupNLGRouter(t, nil)

	w := postNLG(t, r, `{broken`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unparseable body, got %d", w.Code)
	}
}

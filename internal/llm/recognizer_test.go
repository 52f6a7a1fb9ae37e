package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
)

func fakeServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "named entities") {
			t.Errorf("system prompt missing from request: %s", body)
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRecognizer(srv *httptest.Server) *Recognizer {
	return NewRecognizer(&Client{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gpt-test",
		Timeout: 5 * time.Second,
	})
}

func TestRecognizeEntities(t *testing.T) {
	srv := fakeServer(t, `["Acme Corp", "Bob", "Narnia"]`)
	got, err := newTestRecognizer(srv).RecognizeEntities("Bob from Acme Corp called")
	if err != nil {
		t.Fatalf("RecognizeEntities: %v", err)
	}
	// Narnia is not in the text and is dropped.
	if !reflect.DeepEqual(got, []string{"Acme Corp", "Bob"}) {
		t.Errorf("got %q", got)
	}
}

func TestRecognizeEntitiesFencedReply(t *testing.T) {
	srv := fakeServer(t, "```json\n[\"Globex\"]\n```")
	got, err := newTestRecognizer(srv).RecognizeEntities("my Globex invoice")
	if err != nil {
		t.Fatalf("RecognizeEntities: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Globex"}) {
		t.Errorf("got %q", got)
	}
}

func TestRecognizeEntitiesBadReply(t *testing.T) {
	srv := fakeServer(t, "Sure! The entities are Bob.")
	if _, err := newTestRecognizer(srv).RecognizeEntities("Bob is here"); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestRecognizeEntitiesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer srv.Close()

	if _, err := newTestRecognizer(srv).RecognizeEntities("Bob is here"); err == nil {
		t.Fatal("expected error from failing endpoint")
	}
}

func TestRecognizeEntitiesBlankSkipsCall(t *testing.T) {
	r := NewRecognizer(&Client{BaseURL: "http://127.0.0.1:1", APIKey: "k"})
	got, err := r.RecognizeEntities("   ")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no call for blank text, got %q, %v", got, err)
	}
}

func TestChatRequiresEndpoint(t *testing.T) {
	if _, err := (&Client{}).Chat(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected configuration error")
	}
}

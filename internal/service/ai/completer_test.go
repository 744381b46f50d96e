package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/mood-companion/backend/internal/config"
)

type fakeChatModel struct {
	reply string
	err   error
	input []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.StreamReaderFromArray([]*schema.Message{schema.AssistantMessage(f.reply, nil)}), nil
}

func TestChainCompleterRendersPrompt(t *testing.T) {
	fake := &fakeChatModel{reply: "sadness"}
	completer, err := NewChainCompleter(context.Background(), "fake", fake)
	if err != nil {
		t.Fatalf("NewChainCompleter err: %v", err)
	}

	got, err := completer.Complete(context.Background(), `Message: "I miss {home}"`)
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got != "sadness" {
		t.Fatalf("unexpected reply %q", got)
	}
	if len(fake.input) != 1 || fake.input[0].Role != schema.User {
		t.Fatalf("expected a single user message, got %#v", fake.input)
	}
	if !strings.Contains(fake.input[0].Content, "I miss {home}") {
		t.Fatalf("prompt not rendered verbatim: %q", fake.input[0].Content)
	}
	if completer.Name() != "fake" {
		t.Fatalf("unexpected name %s", completer.Name())
	}
}

func TestChainCompleterPropagatesError(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("quota exceeded")}
	completer, err := NewChainCompleter(context.Background(), "fake", fake)
	if err != nil {
		t.Fatalf("NewChainCompleter err: %v", err)
	}
	if _, err := completer.Complete(context.Background(), "hi"); err == nil {
		t.Fatal("expected error from failing model")
	}
}

func TestNewChainCompleterRejectsNilModel(t *testing.T) {
	if _, err := NewChainCompleter(context.Background(), "fake", nil); err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestNewCompleterDisabledWithoutCredentials(t *testing.T) {
	completer, err := NewCompleter(context.Background(), config.AIConfig{Provider: config.ProviderOpenAI})
	if err != nil {
		t.Fatalf("NewCompleter err: %v", err)
	}
	if completer != nil {
		t.Fatal("expected nil completer without credentials")
	}
}

func TestOpenAICompleterParsesChoice(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && len(payload.Messages) > 0 {
			gotPrompt = payload.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":1,"model":"test-model",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"anxiety"}}]}`))
	}))
	defer srv.Close()

	completer, err := NewOpenAICompleter("test-key", "test-model", srv.URL+"/v1/")
	if err != nil {
		t.Fatalf("NewOpenAICompleter err: %v", err)
	}

	got, err := completer.Complete(context.Background(), "classify me")
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got != "anxiety" {
		t.Fatalf("unexpected reply %q", got)
	}
	if gotPrompt != "classify me" {
		t.Fatalf("unexpected prompt sent: %q", gotPrompt)
	}
}

func TestOpenAICompleterServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	completer, err := NewOpenAICompleter("test-key", "test-model", srv.URL+"/v1/")
	if err != nil {
		t.Fatalf("NewOpenAICompleter err: %v", err)
	}
	if _, err := completer.Complete(context.Background(), "hi"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestGeminiCompleterJoinsParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"I'm "},{"text":"here."}]}}]}`))
	}))
	defer srv.Close()

	completer, err := NewGeminiCompleter(context.Background(), "test-key", "gemini-test", srv.URL+"/")
	if err != nil {
		t.Fatalf("NewGeminiCompleter err: %v", err)
	}

	got, err := completer.Complete(context.Background(), "say something")
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if got != "I'm here." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestNewGeminiCompleterValidates(t *testing.T) {
	if _, err := NewGeminiCompleter(context.Background(), "", "m", ""); err == nil {
		t.Fatal("expected error for missing key")
	}
	if _, err := NewOpenAICompleter("k", " ", ""); err == nil {
		t.Fatal("expected error for missing model")
	}
}

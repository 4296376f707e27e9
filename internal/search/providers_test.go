package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAI_MissingKey(t *testing.T) {
	client := &OpenAIClient{apiKey: ""}

	_, err := client.Interpret(context.Background(), "pizza", Options{})
	if err == nil {
		t.Fatal("expected error for missing key")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "openai" {
		t.Fatalf("expected openai-tagged error, got %v", err)
	}
}

func TestOpenAI_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var payload struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid request payload: %v", err)
		}
		if payload.Model != "gpt-3.5-turbo" {
			t.Errorf("expected default model, got %q", payload.Model)
		}
		if payload.MaxTokens != 200 {
			t.Errorf("expected default max_tokens 200, got %d", payload.MaxTokens)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"content": `{"tipo": "pizzaria", "tags": ["família"], "confianca": 0.9}`,
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &OpenAIClient{apiKey: "test-key", apiURL: server.URL}

	result, err := client.Interpret(context.Background(), "pizza em família", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Type == nil || *result.Type != "pizzaria" {
		t.Errorf("expected type 'pizzaria', got %v", result.Type)
	}
	if result.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", result.Confidence)
	}
	if result.Metadata["provider"] != "openai" {
		t.Errorf("expected provider metadata, got %q", result.Metadata["provider"])
	}
}

func TestOpenAI_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer server.Close()

	client := &OpenAIClient{apiKey: "test-key", apiURL: server.URL}

	_, err := client.Interpret(context.Background(), "pizza", Options{})
	if err == nil {
		t.Fatal("expected error")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if provErr.Message != "API error: rate limit exceeded" {
		t.Errorf("expected upstream message passed through, got %q", provErr.Message)
	}
}

func TestClaude_ExtractsJSONFromProse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("unexpected anthropic-version header %q", got)
		}

		resp := map[string]interface{}{
			"content": []map[string]string{
				{"text": `Aqui está: {"tipo": "bar", "tags": ["agitado"]} — espero que ajude!`},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &ClaudeClient{apiKey: "test-key", apiURL: server.URL}

	result, err := client.Interpret(context.Background(), "bar animado", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Type == nil || *result.Type != "bar" {
		t.Errorf("expected type 'bar', got %v", result.Type)
	}
	// missing confidence gets the claude default
	if result.Confidence != 0.8 {
		t.Errorf("expected default confidence 0.8, got %v", result.Confidence)
	}
}

func TestCohere_DefaultConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"generations": []map[string]string{
				{"text": `{"tipo": "café", "tags": []}`},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &CohereClient{apiKey: "test-key", apiURL: server.URL}

	result, err := client.Interpret(context.Background(), "um café", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Confidence != 0.7 {
		t.Errorf("expected cohere default confidence 0.7, got %v", result.Confidence)
	}
	if result.Tags == nil {
		t.Error("tags must never be nil")
	}
}

func TestCohere_NoJSONInReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"generations": []map[string]string{
				{"text": "desculpe, não entendi"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := &CohereClient{apiKey: "test-key", apiURL: server.URL}

	_, err := client.Interpret(context.Background(), "um café", Options{})
	if err == nil {
		t.Fatal("expected error for reply without JSON")
	}
}

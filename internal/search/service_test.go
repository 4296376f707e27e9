package search

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	calls  int
	result *Interpretation
	err    error
}

func (s *stubProvider) Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type channelLogRepository struct {
	entries chan UsageLog
}

func (r *channelLogRepository) Insert(ctx context.Context, entry UsageLog) error {
	r.entries <- entry
	return nil
}

func TestService_DefaultProvider(t *testing.T) {
	openai := &stubProvider{result: &Interpretation{Tags: []string{}, Confidence: 0.8}}
	claude := &stubProvider{result: &Interpretation{Tags: []string{}, Confidence: 0.8}}

	service := NewServiceWithProviders(map[string]Provider{
		"openai": openai,
		"claude": claude,
	}, nil)

	_, err := service.Interpret(context.Background(), "pizza boa", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if openai.calls != 1 {
		t.Errorf("expected openai to be called once, got %d", openai.calls)
	}
	if claude.calls != 0 {
		t.Errorf("expected claude not to be called, got %d", claude.calls)
	}
}

func TestService_SelectedProvider(t *testing.T) {
	cohere := &stubProvider{result: &Interpretation{Tags: []string{}, Confidence: 0.7}}

	service := NewServiceWithProviders(map[string]Provider{"cohere": cohere}, nil)

	_, err := service.Interpret(context.Background(), "pizza boa", Options{Provider: "cohere"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cohere.calls != 1 {
		t.Errorf("expected cohere to be called once, got %d", cohere.calls)
	}
}

func TestService_UnsupportedProvider(t *testing.T) {
	service := NewServiceWithProviders(map[string]Provider{}, nil)

	_, err := service.Interpret(context.Background(), "pizza boa", Options{Provider: "mistral"})
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if provErr.Provider != "mistral" {
		t.Errorf("expected provider tag 'mistral', got %q", provErr.Provider)
	}
}

func TestService_UsageLoggedOnSuccess(t *testing.T) {
	provider := &stubProvider{result: &Interpretation{Tags: []string{}, Confidence: 0.85}}
	logs := &channelLogRepository{entries: make(chan UsageLog, 1)}

	service := NewServiceWithProviders(map[string]Provider{"openai": provider}, logs)

	_, err := service.Interpret(context.Background(), "bar tranquilo", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case entry := <-logs.entries:
		if entry.InputText != "bar tranquilo" {
			t.Errorf("expected input text logged, got %q", entry.InputText)
		}
		if entry.Provider != "openai" {
			t.Errorf("expected provider 'openai', got %q", entry.Provider)
		}
		if entry.Confidence != 0.85 {
			t.Errorf("expected confidence 0.85, got %v", entry.Confidence)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("usage log was never written")
	}
}

func TestService_NoUsageLogOnFailure(t *testing.T) {
	provider := &stubProvider{err: &ProviderError{Provider: "openai", Message: "down"}}
	logs := NewInMemoryUsageLogRepository()

	service := NewServiceWithProviders(map[string]Provider{"openai": provider}, logs)

	_, err := service.Interpret(context.Background(), "bar tranquilo", Options{})
	if err == nil {
		t.Fatal("expected provider error")
	}

	time.Sleep(100 * time.Millisecond)
	if entries := logs.Entries(); len(entries) != 0 {
		t.Fatalf("usage log should not be written on failure, got %v", entries)
	}
}

package search

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultProvider = "openai"

// Provider turns free-text input into a normalized interpretation.
type Provider interface {
	Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error)
}

type Service struct {
	providers map[string]Provider
	logs      UsageLogRepository
}

func NewService(logs UsageLogRepository) *Service {
	return &Service{
		providers: map[string]Provider{
			"openai": NewOpenAIClient(),
			"claude": NewClaudeClient(),
			"cohere": NewCohereClient(),
		},
		logs: logs,
	}
}

// NewServiceWithProviders wires an explicit provider set. Used by tests and
// by callers that want a reduced roster.
func NewServiceWithProviders(providers map[string]Provider, logs UsageLogRepository) *Service {
	return &Service{providers: providers, logs: logs}
}

// Interpret dispatches to the selected provider and, on success, records a
// usage row without blocking the caller.
func (s *Service) Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error) {
	name := opts.Provider
	if name == "" {
		name = defaultProvider
	}

	provider, ok := s.providers[name]
	if !ok {
		return nil, &ProviderError{Provider: name, Message: "provider not supported"}
	}

	interpretation, err := provider.Interpret(ctx, input, opts)
	if err != nil {
		return nil, err
	}

	s.logUsage(input, name, interpretation.Confidence)

	return interpretation, nil
}

// logUsage is fire-and-forget: the response never waits on the analytics
// write and a failed insert is only logged.
func (s *Service) logUsage(input, provider string, confidence float64) {
	if s.logs == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := s.logs.Insert(ctx, UsageLog{
			InputText:  input,
			Provider:   provider,
			Confidence: confidence,
		})
		if err != nil {
			logrus.WithError(err).Warn("usage log write failed")
		}
	}()
}

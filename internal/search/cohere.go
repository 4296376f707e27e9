package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"
)

type CohereClient struct {
	apiKey string
	apiURL string
}

func NewCohereClient() *CohereClient {
	return &CohereClient{
		apiKey: os.Getenv("COHERE_API_KEY"),
		apiURL: "https://api.cohere.ai/v1/generate",
	}
}

func (co *CohereClient) Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error) {
	if co.apiKey == "" {
		return nil, &ProviderError{Provider: "cohere", Message: "Cohere API key not configured"}
	}

	model := opts.Model
	if model == "" {
		model = "command-light"
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	payload := map[string]interface{}{
		"model":       model,
		"prompt":      buildCoherePrompt(input),
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, co.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+co.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "cohere", Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: "cohere", Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &ProviderError{Provider: "cohere", Message: "API error: " + msg}
	}

	var result struct {
		Generations []struct {
			Text string `json:"text"`
		} `json:"generations"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ProviderError{Provider: "cohere", Message: "invalid response body"}
	}
	if len(result.Generations) == 0 || result.Generations[0].Text == "" {
		return nil, &ProviderError{Provider: "cohere", Message: "empty response"}
	}

	return parseInterpretation(result.Generations[0].Text, "cohere", model, 0.7)
}

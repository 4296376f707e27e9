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

const (
	defaultMaxTokens   = 200
	defaultTemperature = 0.3
)

type OpenAIClient struct {
	apiKey string
	apiURL string
}

func NewOpenAIClient() *OpenAIClient {
	return &OpenAIClient{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		apiURL: "https://api.openai.com/v1/chat/completions",
	}
}

func (o *OpenAIClient) Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error) {
	if o.apiKey == "" {
		return nil, &ProviderError{Provider: "openai", Message: "OpenAI API key not configured"}
	}

	model := opts.Model
	if model == "" {
		model = "gpt-3.5-turbo"
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
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": openAISystemPrompt},
			{"role": "user", "content": buildOpenAIUserPrompt(input)},
		},
		"max_tokens":      maxTokens,
		"temperature":     temperature,
		"response_format": map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "openai", Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: "openai", Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		msg := apiErr.Error.Message
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &ProviderError{Provider: "openai", Message: "API error: " + msg}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ProviderError{Provider: "openai", Message: "invalid response body"}
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return nil, &ProviderError{Provider: "openai", Message: "empty response"}
	}

	return parseInterpretation(result.Choices[0].Message.Content, "openai", model, 0.8)
}

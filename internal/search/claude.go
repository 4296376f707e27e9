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

type ClaudeClient struct {
	apiKey string
	apiURL string
}

func NewClaudeClient() *ClaudeClient {
	return &ClaudeClient{
		apiKey: os.Getenv("CLAUDE_API_KEY"),
		apiURL: "https://api.anthropic.com/v1/messages",
	}
}

func (cl *ClaudeClient) Interpret(ctx context.Context, input string, opts Options) (*Interpretation, error) {
	if cl.apiKey == "" {
		return nil, &ProviderError{Provider: "claude", Message: "Claude API key not configured"}
	}

	model := opts.Model
	if model == "" {
		model = "claude-3-haiku-20240307"
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	payload := map[string]interface{}{
		"model":      model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": buildClaudePrompt(input)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", cl.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "claude", Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: "claude", Message: err.Error()}
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
		return nil, &ProviderError{Provider: "claude", Message: "API error: " + msg}
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ProviderError{Provider: "claude", Message: "invalid response body"}
	}
	if len(result.Content) == 0 || result.Content[0].Text == "" {
		return nil, &ProviderError{Provider: "claude", Message: "empty response"}
	}

	return parseInterpretation(result.Content[0].Text, "claude", model, 0.8)
}

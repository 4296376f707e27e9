package search

import (
	"encoding/json"
	"strings"
	"time"
)

// extractJSON locates the JSON object embedded in model output, tolerating
// surrounding prose from providers without a strict JSON mode.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

type rawInterpretation struct {
	Tipo        *string         `json:"tipo"`
	Tags        json.RawMessage `json:"tags"`
	Localizacao *string         `json:"localizacao"`
	Ambiente    *string         `json:"ambiente"`
	FaixaPreco  *float64        `json:"faixaPreco"`
	Horario     *string         `json:"horario"`
	Confianca   *float64        `json:"confianca"`
}

// parseInterpretation normalizes a provider's text reply: extracts the
// embedded JSON object, coerces tags to an array, fills a missing or zero
// confidence with the provider's default and clamps it into [0,1].
func parseInterpretation(content, provider, model string, defaultConfidence float64) (*Interpretation, error) {
	jsonText := extractJSON(content)
	if jsonText == "" {
		return nil, &ProviderError{Provider: provider, Message: "no JSON found in response"}
	}

	var raw rawInterpretation
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, &ProviderError{Provider: provider, Message: "invalid JSON in response"}
	}

	tags := []string{}
	if len(raw.Tags) > 0 {
		// malformed tags degrade to an empty array, never an error
		_ = json.Unmarshal(raw.Tags, &tags)
		if tags == nil {
			tags = []string{}
		}
	}

	confidence := defaultConfidence
	if raw.Confianca != nil && *raw.Confianca != 0 {
		confidence = *raw.Confianca
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &Interpretation{
		Type:       raw.Tipo,
		Tags:       tags,
		Location:   raw.Localizacao,
		Ambience:   raw.Ambiente,
		PriceRange: raw.FaixaPreco,
		Hours:      raw.Horario,
		Confidence: confidence,
		Metadata: map[string]string{
			"provider":  provider,
			"model":     model,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

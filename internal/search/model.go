package search

import "fmt"

// Options are caller-supplied knobs for a single interpretation request.
// Zero values fall back to per-provider defaults.
type Options struct {
	Model             string   `json:"model,omitempty"`
	MaxTokens         int      `json:"maxTokens,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	IncludeConfidence bool     `json:"includeConfidence,omitempty"`
	Provider          string   `json:"provider,omitempty"`
}

// Interpretation is the normalized result shape shared by every provider
// and by the keyword fallback. Tags is always non-nil.
type Interpretation struct {
	Type       *string           `json:"tipo,omitempty"`
	Tags       []string          `json:"tags"`
	Location   *string           `json:"localizacao,omitempty"`
	Ambience   *string           `json:"ambiente,omitempty"`
	PriceRange *float64          `json:"faixaPreco,omitempty"`
	Hours      *string           `json:"horario,omitempty"`
	Confidence float64           `json:"confianca"`
	Metadata   map[string]string `json:"metadados"`
}

// UsageLog is one analytics row recorded per successful interpretation.
type UsageLog struct {
	InputText  string
	Provider   string
	Confidence float64
}

// ProviderError tags a failure with the provider it came from, carrying
// the upstream error message when one is available.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

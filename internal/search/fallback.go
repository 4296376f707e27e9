package search

import (
	"strings"
	"time"
)

const fallbackConfidence = 0.5

// Table order is significant: the first matching keyword decides the type.
var fallbackTypes = []struct {
	keyword string
	tipo    string
}{
	{"café", "café"},
	{"pizza", "pizzaria"},
	{"bar", "bar"},
	{"sushi", "japonês"},
	{"hambúrguer", "lanchonete"},
}

// Every matching keyword contributes its tags.
var fallbackTags = []struct {
	keyword string
	tags    []string
}{
	{"romântico", []string{"romântico"}},
	{"família", []string{"família"}},
	{"tranquilo", []string{"tranquilo"}},
	{"pet", []string{"pet-friendly"}},
	{"barato", []string{"casual"}},
	{"caro", []string{"premium"}},
}

// CreateFallbackInterpretation is the deterministic degraded path used when
// no provider can be reached. Pure keyword matching, no network calls.
func CreateFallbackInterpretation(input string) *Interpretation {
	inputLower := strings.ToLower(input)

	var tipo *string
	for _, entry := range fallbackTypes {
		if strings.Contains(inputLower, entry.keyword) {
			t := entry.tipo
			tipo = &t
			break
		}
	}

	tags := []string{}
	for _, entry := range fallbackTags {
		if strings.Contains(inputLower, entry.keyword) {
			tags = append(tags, entry.tags...)
		}
	}

	return &Interpretation{
		Type:       tipo,
		Tags:       tags,
		Confidence: fallbackConfidence,
		Metadata: map[string]string{
			"provider":  "fallback",
			"method":    "keyword_matching",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
}

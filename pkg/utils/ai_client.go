package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationClientInterface is the single entry point to the external
// text-generation service. Implementations return the raw response text;
// parsing and validation happen downstream.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// NewGenerationClient builds a Gemini or OpenAI backed client based on config.
// A missing credential is a configuration error and fails construction,
// before any request is ever attempted.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

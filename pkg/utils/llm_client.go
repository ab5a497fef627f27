package utils

import (
	"context"
	"fmt"
	"strings"
)

// LLMClientInterface is the single capability the enrichment pipeline consumes:
// a blocking JSON-mode generation call. Implementations must return the raw
// JSON text or an error; they never interpret the payload.
type LLMClientInterface interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt, model string, temperature float64) (string, error)
}

// NewLLMClient creates a client for the configured provider.
func NewLLMClient(provider, apiKey, model string) (LLMClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAILLMClient(apiKey, model), nil
	case "gemini":
		return NewGeminiLLMClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// UnavailableLLMClient stands in when no API credential is configured. The
// planner still runs; enrichment calls fail and degrade to their fallbacks.
type UnavailableLLMClient struct {
	Reason string
}

func (c *UnavailableLLMClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt, model string, temperature float64) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrAIUnavailable, c.Reason)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiLLMClient implements LLMClientInterface using Google's Gemini models.
type GeminiLLMClient struct {
	client *genai.Client
	model  string
}

func NewGeminiLLMClient(apiKey, model string) (*GeminiLLMClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiLLMClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiLLMClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt, model string, temperature float64) (string, error) {
	if model == "" {
		model = c.model
	}

	m := c.client.GenerativeModel(model)
	// Force JSON response for structured parsing.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(float32(temperature))

	// Gemini supports SystemInstruction, but appending the instruction to the
	// prompt keeps the request shape identical across providers.
	fullPrompt := fmt.Sprintf("%s\n\n%s", systemPrompt, userPrompt)

	resp, err := m.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	content := cleanJSONString(sb.String())
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}
	return content, nil
}

func (c *GeminiLLMClient) Close() error {
	return c.client.Close()
}

package utils

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAILLMClient implements LLMClientInterface on the chat-completions API
// with the JSON-object response format.
type OpenAILLMClient struct {
	client *openai.Client
	model  string
}

func NewOpenAILLMClient(apiKey, model string) *OpenAILLMClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAILLMClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAILLMClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt, model string, temperature float64) (string, error) {
	if model == "" {
		model = c.model
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}

	content := cleanJSONString(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid json")
	}
	return content, nil
}

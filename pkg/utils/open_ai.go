package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIScheduleClient implements ScheduleClientInterface over chat completions.
type OpenAIScheduleClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIScheduleClient(apiKey, model string) ScheduleClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIScheduleClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIScheduleClient) GenerateSchedule(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   4096,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

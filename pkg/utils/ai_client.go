package utils

import (
	"context"
	"fmt"
	"strings"
)

// ScheduleClientInterface is the contract with the external text-generation
// service. One call per build attempt; no retry. Implementations must return
// the raw response text, JSON extraction happens at the caller.
type ScheduleClientInterface interface {
	GenerateSchedule(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// NewScheduleClient creates either a Gemini or an OpenAI client based on config.
// Provider "none" (or an empty API key) disables the generative path entirely;
// the engine then always builds deterministically.
func NewScheduleClient(provider, apiKey, model string) (ScheduleClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "none":
		return nil, nil
	case "openai":
		if apiKey == "" {
			return nil, nil
		}
		return NewOpenAIScheduleClient(apiKey, model), nil
	case "gemini":
		if apiKey == "" {
			return nil, nil
		}
		return NewGeminiScheduleClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported schedule provider: %s. Use 'gemini', 'openai' or 'none'", provider)
	}
}

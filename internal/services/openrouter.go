package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"resume-analyzer/internal/config"
	"resume-analyzer/pkg/errors"
)

// openRouterService talks to any OpenAI-compatible chat-completions
// endpoint (OpenRouter by default): bearer-token auth, a single user
// message, max_tokens and temperature from config.
type openRouterService struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func NewOpenRouterService(cfg config.LLMConfig) (LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable not set")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &openRouterService{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

func (s *openRouterService) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", errors.LLM("Error calling LLM API", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.LLM("Unexpected API response format", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

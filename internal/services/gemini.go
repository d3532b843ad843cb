package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"resume-analyzer/internal/config"
	"resume-analyzer/pkg/errors"
)

// geminiService is the alternate model backend, kept behind the same
// LLMService interface as the OpenRouter provider.
type geminiService struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
	timeout     time.Duration
}

func NewGeminiService(cfg config.GeminiConfig, llmCfg config.LLMConfig) (LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		model:       cfg.Model,
		maxTokens:   int32(llmCfg.MaxTokens),
		temperature: llmCfg.Temperature,
		timeout:     llmCfg.Timeout,
	}, nil
}

func (g *geminiService) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", errors.LLM("Error calling LLM API", err)
	}
	if resp == nil {
		return "", errors.LLM("Unexpected API response format", nil)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.LLM("no text content in response", nil)
	}

	return text, nil
}

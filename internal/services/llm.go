package services

import (
	"context"
	"fmt"

	"resume-analyzer/internal/config"
)

// LLMService sends a fully rendered prompt to the model backend and
// returns the raw text completion. Implementations own their request
// timeout; callers never see a silent hang.
type LLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewLLMService selects a provider from configuration. A missing API
// key is reported here so startup fails fast instead of every request
// failing later.
func NewLLMService(cfg *config.Config) (LLMService, error) {
	switch cfg.LLM.Provider {
	case "openrouter":
		return NewOpenRouterService(cfg.LLM)
	case "gemini":
		return NewGeminiService(cfg.Gemini, cfg.LLM)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
}

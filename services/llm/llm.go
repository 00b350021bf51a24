package llm

import (
	"context"
	"fmt"

	"studybuddy/config"
)

// Generator is the text-generation collaborator: one instruction text in,
// one generated answer out. Implementations are synchronous and opaque to
// the rest of the system.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the provider selected by LLM_PROVIDER.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case "gemini", "":
		return NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "claude":
		return NewClaudeGenerator(cfg.AnthropicAPIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLMProvider)
	}
}

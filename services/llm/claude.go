package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeGenerator generates answers with Anthropic's Claude models.
type ClaudeGenerator struct {
	client *anthropic.Client
}

func NewClaudeGenerator(apiKey string) (*ClaudeGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the claude provider")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeGenerator{client: &client}, nil
}

func (c *ClaudeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log.Printf("[INFO] Calling Anthropic for answer generation")

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude4Sonnet20250514,
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Printf("[ERROR] Failed to call Anthropic API: %v", err)
		return "", fmt.Errorf("failed to call Anthropic API: %v", err)
	}

	var text string
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += block.Text
		}
	}

	return strings.TrimSpace(text), nil
}

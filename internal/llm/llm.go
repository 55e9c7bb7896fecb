package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohan/vaani/internal/observability"
	"github.com/rohan/vaani/pkg/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Client is a thin chat wrapper around a langchaingo model. Workflows go
// through it so every exchange is logged the same way.
type Client struct {
	Model  llms.Model
	Logger *observability.Logger
}

func New(cfg config.OpenAIConfig, logger *observability.Logger) (*Client, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai model: %w", err)
	}
	return &Client{Model: model, Logger: logger}, nil
}

// Chat sends a system prompt, prior history, and the user turn, and returns
// the assistant's text.
func (c *Client) Chat(ctx context.Context, workflow, system string, history []llms.MessageContent, user string) (string, error) {
	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		})
	}
	messages = append(messages, history...)
	messages = append(messages, llms.MessageContent{
		Role:  schema.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(user)},
	})

	resp, err := c.Model.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	c.Logger.LogLLM(workflow, user, text)
	return text, nil
}

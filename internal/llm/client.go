// Package llm provides the chat-completion collaborator: a thin client over
// any OpenAI-compatible endpoint (OpenRouter, OpenAI, local inference
// servers) plus the fixed system prompts of the learning pipeline.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"learnrag/internal/domain"
)

// Config configures the completion client.
type Config struct {
	BaseURL     string
	APIKeyEnv   string
	Model       string
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int
}

// Client implements domain.Completer over a chat-completions endpoint.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewClient creates a completion client using the provided configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "OPENROUTER_API_KEY"
	}
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "openai/gpt-4o-mini"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2400
	}
	clientCfg := openai.DefaultConfig(key)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Complete sends the system instruction and user prompt and returns the
// trimmed assistant text. Transport failures wrap domain.ErrGeneration.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrGeneration)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ModelName returns the configured model identifier.
func (c *Client) ModelName() string { return c.model }

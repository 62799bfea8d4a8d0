package groq

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"

	"reelscript/internal/llm"
	"reelscript/pkg/prompts"
)

var _ llm.Client = (*Client)(nil)

type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Prompts     *prompts.Prompts
}

type Client struct {
	client      *groq.Client
	model       groq.ChatModel
	maxTokens   int
	temperature float32
	prompts     *prompts.Prompts
}

func NewClient(cfg Config) (*Client, error) {
	client, err := groq.NewClient(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	p := cfg.Prompts
	if p == nil {
		p = prompts.Defaults()
	}

	return &Client{
		client:      client,
		model:       groq.ChatModel(cfg.Model),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		prompts:     p,
	}, nil
}

func (c *Client) GenerateOutline(ctx context.Context, params prompts.OutlineParams) (string, error) {
	prompt, err := c.prompts.RenderOutline(params)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, prompt)
}

func (c *Client) GenerateScript(ctx context.Context, params prompts.ScriptParams) (string, error) {
	prompt, err := c.prompts.RenderScript(params)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, prompt)
}

func (c *Client) GenerateHashtags(ctx context.Context, params prompts.HashtagsParams) (string, error) {
	prompt, err := c.prompts.RenderHashtags(params)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: c.prompts.System.Default},
			{Role: groq.RoleUser, Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	return content, nil
}

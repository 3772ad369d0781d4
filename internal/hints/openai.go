package hints

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI chat completions
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI hint provider
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		apiKey: config.OpenAIKey,
		model:  config.OpenAIModel,
		client: openai.NewClient(config.OpenAIKey),
	}, nil
}

// FetchHint fetches a pronunciation breakdown from OpenAI
func (p *OpenAIProvider) FetchHint(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a %s language expert helping learners pronounce numbers. "+
					"Explain pronunciation using familiar English sounds where possible. Be concise.",
					req.LanguageName),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(req),
			},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

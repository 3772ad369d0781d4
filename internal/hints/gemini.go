package hints

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using Google's Gemini API
type GeminiProvider struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini hint provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		apiKey: config.GeminiKey,
		model:  config.GeminiModel,
		client: client,
	}, nil
}

// FetchHint fetches a pronunciation breakdown from Gemini
func (p *GeminiProvider) FetchHint(ctx context.Context, req Request) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{genai.NewPartFromText(prompt(req))},
		},
	}

	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 500,
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from Gemini")
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("Gemini response blocked by safety filters")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return strings.TrimSpace(text.String()), nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}

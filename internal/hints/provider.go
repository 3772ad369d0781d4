package hints

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Request identifies one numeral to explain.
type Request struct {
	LanguageName string // e.g. "Korean"
	Number       int64
	Words        string // native word form
	Romanized    string // empty for Latin-script languages
}

// Provider defines the interface for pronunciation hint providers
type Provider interface {
	// FetchHint returns a pronunciation breakdown for the numeral
	FetchHint(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds common configuration for hint providers
type Config struct {
	Provider string // "openai" or "gemini"

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate hint provider based on configuration,
// wrapped in a circuit breaker so a flapping API cannot stall deck
// generation.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		return NewBreakerProvider(provider), nil

	case "gemini":
		provider, err := NewGeminiProvider(ctx, config)
		if err != nil {
			return nil, err
		}
		return NewBreakerProvider(provider), nil

	default:
		return nil, fmt.Errorf("unknown hint provider: %s", config.Provider)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary
// if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// FetchHint tries the primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) FetchHint(ctx context.Context, req Request) (string, error) {
	hint, err := p.primary.FetchHint(ctx, req)
	if err != nil {
		fmt.Printf("Primary hint provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())
		return p.fallback.FetchHint(ctx, req)
	}
	return hint, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// SaveHint writes the hint to hint.txt in the card directory
func SaveHint(cardDir, hint string) error {
	hintFile := filepath.Join(cardDir, "hint.txt")
	if err := os.WriteFile(hintFile, []byte(hint+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write hint file: %w", err)
	}
	return nil
}

// prompt builds the user prompt shared by all providers.
func prompt(req Request) string {
	romanized := ""
	if req.Romanized != "" {
		romanized = fmt.Sprintf(" (romanized: %s)", req.Romanized)
	}
	return fmt.Sprintf(`For the %s number word '%s'%s, meaning %d:
1. Break the word into its numeral building blocks (digits and place-value units)
2. For EVERY block, explain how it's pronounced with examples:
   - If similar to an English sound, give English word examples
   - If not in English, describe tongue/mouth position or compare to similar sounds
3. Point out any sound changes where blocks meet

Example format:
Word: [word]
• block - meaning, pronounced like ...`,
		req.LanguageName, req.Words, romanized, req.Number)
}

package hints

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubProvider is a scriptable in-memory provider for wrapper tests.
type stubProvider struct {
	name  string
	hint  string
	err   error
	calls int
}

func (s *stubProvider) FetchHint(ctx context.Context, req Request) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.hint, nil
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) IsAvailable() error { return s.err }

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:   "openai configured",
			config: &Config{Provider: "openai", OpenAIKey: "test-key", OpenAIModel: "gpt-4o-mini"},
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini without key",
			config:  &Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "espeak"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(context.Background(), tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && provider == nil {
				t.Error("NewProvider returned nil provider")
			}
		})
	}
}

func TestProviderWithFallback(t *testing.T) {
	req := Request{LanguageName: "Korean", Number: 54, Words: "오십사", Romanized: "o-sip-sa"}

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &stubProvider{name: "primary", hint: "primary hint"}
		fallback := &stubProvider{name: "fallback", hint: "fallback hint"}
		p := NewProviderWithFallback(primary, fallback)

		hint, err := p.FetchHint(context.Background(), req)
		if err != nil {
			t.Fatalf("FetchHint failed: %v", err)
		}
		if hint != "primary hint" {
			t.Errorf("hint = %q, want primary hint", hint)
		}
		if fallback.calls != 0 {
			t.Error("fallback called although primary succeeded")
		}
	})

	t.Run("primary fails", func(t *testing.T) {
		primary := &stubProvider{name: "primary", err: errors.New("boom")}
		fallback := &stubProvider{name: "fallback", hint: "fallback hint"}
		p := NewProviderWithFallback(primary, fallback)

		hint, err := p.FetchHint(context.Background(), req)
		if err != nil {
			t.Fatalf("FetchHint failed: %v", err)
		}
		if hint != "fallback hint" {
			t.Errorf("hint = %q, want fallback hint", hint)
		}
	})
}

func TestBreakerProviderOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &stubProvider{name: "flaky", err: errors.New("boom")}
	p := NewBreakerProvider(inner)

	for i := 0; i < 5; i++ {
		_, err := p.FetchHint(context.Background(), Request{})
		if err == nil {
			t.Fatal("FetchHint succeeded unexpectedly")
		}
	}

	// After three consecutive failures the circuit is open and the inner
	// provider is no longer called.
	if inner.calls > 3 {
		t.Errorf("inner provider called %d times, want at most 3", inner.calls)
	}
}

func TestSaveHint(t *testing.T) {
	tmpDir := t.TempDir()

	if err := SaveHint(tmpDir, "say 'o' as in 'more'"); err != nil {
		t.Fatalf("SaveHint failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "hint.txt"))
	if err != nil {
		t.Fatalf("failed to read hint file: %v", err)
	}
	if string(content) != "say 'o' as in 'more'\n" {
		t.Errorf("hint file content = %q", string(content))
	}
}

func TestSaveHintInvalidPath(t *testing.T) {
	if err := SaveHint("/nonexistent/path", "hint"); err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestPromptMentionsNumeral(t *testing.T) {
	req := Request{LanguageName: "Korean", Number: 54, Words: "오십사", Romanized: "o-sip-sa"}
	p := prompt(req)
	for _, want := range []string{"Korean", "오십사", "o-sip-sa", "54"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFetchHint_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	provider, err := NewOpenAIProvider(&Config{OpenAIKey: apiKey, OpenAIModel: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider failed: %v", err)
	}

	hint, err := provider.FetchHint(context.Background(), Request{
		LanguageName: "Korean", Number: 54, Words: "오십사", Romanized: "o-sip-sa",
	})
	if err != nil {
		t.Fatalf("FetchHint failed: %v", err)
	}
	if hint == "" {
		t.Error("got empty hint")
	}

	t.Logf("Hint for 오십사: %s", hint)
}

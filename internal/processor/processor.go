package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vdavid/number-learning-app-sub000/internal"
	"github.com/vdavid/number-learning-app-sub000/internal/anki"
	"github.com/vdavid/number-learning-app-sub000/internal/cli"
	"github.com/vdavid/number-learning-app-sub000/internal/curriculum"
	"github.com/vdavid/number-learning-app-sub000/internal/hints"
	"github.com/vdavid/number-learning-app-sub000/internal/language"
)

// Processor handles the main deck generation logic
type Processor struct {
	flags *cli.Flags
	lang  *language.Language
}

// NewProcessor creates a new deck processor
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	lang, err := language.Get(flags.Language)
	if err != nil {
		return nil, err
	}
	return &Processor{
		flags: flags,
		lang:  lang,
	}, nil
}

// Language returns the resolved drill language
func (p *Processor) Language() *language.Language {
	return p.lang
}

// BuildDeck resolves drill values, renders cards, and writes the deck.
// It returns the path of the generated file.
func (p *Processor) BuildDeck(ctx context.Context) (string, error) {
	values, err := p.resolveValues()
	if err != nil {
		return "", err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	cards := p.buildCards(values)

	if p.flags.WithHints {
		provider, err := p.hintProvider(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: hint provider unavailable: %v\n", err)
		} else {
			p.attachHints(ctx, provider, cards)
		}
	}

	switch p.flags.DeckFormat {
	case "apkg":
		return p.writeAPKG(cards)
	case "csv":
		return p.writeCSV(cards)
	default:
		return "", fmt.Errorf("unknown deck format %q (apkg or csv)", p.flags.DeckFormat)
	}
}

// resolveValues determines which numbers to drill. A batch file wins
// over a stage name; with neither, the full curriculum is used.
func (p *Processor) resolveValues() ([]int64, error) {
	if p.flags.BatchFile != "" {
		return curriculum.ReadValuesFile(p.flags.BatchFile)
	}
	if p.flags.Stage != "" {
		stage, err := curriculum.StageByName(p.flags.Stage)
		if err != nil {
			return nil, err
		}
		return stage.Values, nil
	}
	return curriculum.Merge(curriculum.Stages()...), nil
}

func (p *Processor) buildCards(values []int64) []anki.Card {
	cards := make([]anki.Card, 0, len(values))
	for _, v := range values {
		words := p.lang.NumberToWords(v)
		romanized, _ := p.lang.NumberToRomanized(v)
		cards = append(cards, anki.Card{
			Number:    v,
			Digits:    fmt.Sprintf("%d", v),
			Words:     words,
			Romanized: romanized,
			Language:  p.lang.Code,
		})
	}
	return cards
}

// attachHints fetches pronunciation hints best-effort. A failing hint
// provider must not abort deck generation.
func (p *Processor) attachHints(ctx context.Context, provider hints.Provider, cards []anki.Card) {
	for i := range cards {
		fmt.Printf("Fetching hint %d/%d: %s\n", i+1, len(cards), cards[i].Words)
		hint, err := provider.FetchHint(ctx, hints.Request{
			LanguageName: p.lang.Name,
			Number:       cards[i].Number,
			Words:        cards[i].Words,
			Romanized:    cards[i].Romanized,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no hint for %d: %v\n", cards[i].Number, err)
			continue
		}
		cards[i].Hint = hint
	}
}

// FetchHint fetches a pronunciation hint for a single number.
func (p *Processor) FetchHint(ctx context.Context, n int64) (string, error) {
	provider, err := p.hintProvider(ctx)
	if err != nil {
		return "", err
	}

	words := p.lang.NumberToWords(n)
	romanized, _ := p.lang.NumberToRomanized(n)
	return provider.FetchHint(ctx, hints.Request{
		LanguageName: p.lang.Name,
		Number:       n,
		Words:        words,
		Romanized:    romanized,
	})
}

// hintProvider builds the configured provider. When both API keys are
// present the secondary service acts as a fallback.
func (p *Processor) hintProvider(ctx context.Context) (hints.Provider, error) {
	config := &hints.Config{
		Provider:    p.flags.HintProvider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: p.flags.GeminiModel,
	}

	primary, err := hints.NewProvider(ctx, config)
	if err != nil {
		return nil, err
	}

	fallbackName := "gemini"
	if config.Provider == "gemini" {
		fallbackName = "openai"
	}
	fallbackConfig := *config
	fallbackConfig.Provider = fallbackName

	fallback, err := hints.NewProvider(ctx, &fallbackConfig)
	if err != nil {
		// No fallback configured, use the primary alone
		return primary, nil
	}

	return hints.NewProviderWithFallback(primary, fallback), nil
}

func (p *Processor) writeCSV(cards []anki.Card) (string, error) {
	outputPath := filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(p.flags.DeckName)+".csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		DeckName:       p.flags.DeckName,
		IncludeHeaders: true,
	})
	for _, card := range cards {
		gen.AddCard(card)
	}
	if err := gen.GenerateCSV(); err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}
	return outputPath, nil
}

func (p *Processor) writeAPKG(cards []anki.Card) (string, error) {
	outputPath := filepath.Join(p.flags.OutputDir, internal.SanitizeFilename(p.flags.DeckName)+".apkg")
	gen := anki.NewAPKGGenerator(p.flags.DeckName)
	for _, card := range cards {
		gen.AddCard(card)
	}
	if err := gen.GenerateAPKG(outputPath); err != nil {
		return "", fmt.Errorf("failed to generate APKG: %w", err)
	}
	return outputPath, nil
}

package anki

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Card represents a single numeral drill flashcard
type Card struct {
	Number    int64  // the drilled value
	Digits    string // plain digit rendering, the card front
	Words     string // native word form
	Romanized string // Latin-script pronunciation aid, may be empty
	Hint      string // optional pronunciation hint text
	Language  string // language code, exported as a tag
}

// GeneratorOptions configures the deck export
type GeneratorOptions struct {
	OutputPath     string // output file path
	DeckName       string // deck name for APKG export
	IncludeHeaders bool   // include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "numeral_deck.csv",
		DeckName:       "Number Drills",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files from numeral cards
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new deck generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		headers := []string{"Number", "Words", "Romanization", "Hint", "Language"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Digits,
			card.Words,
			card.Romanized,
			card.Hint,
			card.Language,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

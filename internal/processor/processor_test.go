package processor

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/vdavid/number-learning-app-sub000/internal/cli"
	"github.com/vdavid/number-learning-app-sub000/internal/testutil"
)

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	if proc.Language().Code != "ko" {
		t.Errorf("Expected default language 'ko', got '%s'", proc.Language().Code)
	}
}

func TestNewProcessorUnknownLanguage(t *testing.T) {
	flags := cli.NewFlags()
	flags.Language = "xx"

	if _, err := NewProcessor(flags); err == nil {
		t.Error("Expected error for unknown language")
	}
}

func TestResolveValues(t *testing.T) {
	t.Run("stage", func(t *testing.T) {
		flags := cli.NewFlags()
		flags.Stage = "digits"

		proc, err := NewProcessor(flags)
		if err != nil {
			t.Fatalf("NewProcessor() error = %v", err)
		}

		values, err := proc.resolveValues()
		if err != nil {
			t.Fatalf("resolveValues() error = %v", err)
		}
		if len(values) != 10 {
			t.Errorf("Expected 10 digit values, got %d", len(values))
		}
		if values[0] != 0 || values[9] != 9 {
			t.Errorf("Unexpected digit stage values: %v", values)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		flags := cli.NewFlags()
		flags.Stage = "impossible"

		proc, err := NewProcessor(flags)
		if err != nil {
			t.Fatalf("NewProcessor() error = %v", err)
		}

		if _, err := proc.resolveValues(); err == nil {
			t.Error("Expected error for unknown stage")
		}
	})

	t.Run("batch file wins over stage", func(t *testing.T) {
		batchFile := testutil.CreateValuesFile(t, t.TempDir(), "54", "100-102")

		flags := cli.NewFlags()
		flags.Stage = "digits"
		flags.BatchFile = batchFile

		proc, err := NewProcessor(flags)
		if err != nil {
			t.Fatalf("NewProcessor() error = %v", err)
		}

		values, err := proc.resolveValues()
		if err != nil {
			t.Fatalf("resolveValues() error = %v", err)
		}
		expected := []int64{54, 100, 101, 102}
		if len(values) != len(expected) {
			t.Fatalf("Expected %d values, got %d", len(expected), len(values))
		}
		for i, v := range expected {
			if values[i] != v {
				t.Errorf("values[%d] = %d, want %d", i, values[i], v)
			}
		}
	})

	t.Run("default is full curriculum", func(t *testing.T) {
		flags := cli.NewFlags()

		proc, err := NewProcessor(flags)
		if err != nil {
			t.Fatalf("NewProcessor() error = %v", err)
		}

		values, err := proc.resolveValues()
		if err != nil {
			t.Fatalf("resolveValues() error = %v", err)
		}
		if len(values) < 50 {
			t.Errorf("Expected full curriculum, got only %d values", len(values))
		}
	})
}

func TestBuildCards(t *testing.T) {
	flags := cli.NewFlags()

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	cards := proc.buildCards([]int64{54, 12345})

	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	if cards[0].Digits != "54" || cards[0].Words != "오십사" {
		t.Errorf("Unexpected first card: %+v", cards[0])
	}
	if cards[0].Romanized != "o-sip-sa" {
		t.Errorf("Expected romanization 'o-sip-sa', got '%s'", cards[0].Romanized)
	}
	if cards[1].Words != "만이천삼백사십오" {
		t.Errorf("Unexpected second card words: %s", cards[1].Words)
	}
	if cards[0].Language != "ko" {
		t.Errorf("Expected language 'ko', got '%s'", cards[0].Language)
	}
}

func TestBuildDeckCSV(t *testing.T) {
	tempDir := t.TempDir()

	flags := cli.NewFlags()
	flags.Language = "sv"
	flags.OutputDir = tempDir
	flags.Stage = "digits"
	flags.DeckFormat = "csv"
	flags.DeckName = "Swedish Digits"

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	outputPath, err := proc.BuildDeck(context.Background())
	if err != nil {
		t.Fatalf("BuildDeck() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open generated deck: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	// Header plus ten digit cards
	if len(records) != 11 {
		t.Fatalf("Expected 11 records, got %d", len(records))
	}
	if records[1][1] != "noll" {
		t.Errorf("Expected first card 'noll', got '%s'", records[1][1])
	}
	if records[6][1] != "fem" {
		t.Errorf("Expected sixth card 'fem', got '%s'", records[6][1])
	}
}

func TestBuildDeckUnknownFormat(t *testing.T) {
	flags := cli.NewFlags()
	flags.OutputDir = t.TempDir()
	flags.Stage = "digits"
	flags.DeckFormat = "pdf"

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	if _, err := proc.BuildDeck(context.Background()); err == nil {
		t.Error("Expected error for unknown deck format")
	}
}

func TestBuildDeckAPKG(t *testing.T) {
	tempDir := t.TempDir()

	flags := cli.NewFlags()
	flags.OutputDir = tempDir
	flags.Stage = "digits"

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	outputPath, err := proc.BuildDeck(context.Background())
	if err != nil {
		t.Fatalf("BuildDeck() error = %v", err)
	}

	if filepath.Ext(outputPath) != ".apkg" {
		t.Errorf("Expected .apkg output, got %s", outputPath)
	}
	testutil.AssertFileExists(t, outputPath)
}

func TestAttachHints(t *testing.T) {
	flags := cli.NewFlags()

	proc, err := NewProcessor(flags)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}

	cards := proc.buildCards([]int64{5, 54})

	provider := &testutil.MockHintProvider{
		Hints: map[int64]string{5: "오 is the Sino-Korean five"},
		Errors: map[int64]error{
			54: context.DeadlineExceeded,
		},
	}

	testutil.CaptureOutput(t, func() {
		proc.attachHints(context.Background(), provider, cards)
	})

	if cards[0].Hint != "오 is the Sino-Korean five" {
		t.Errorf("Expected hint on first card, got %q", cards[0].Hint)
	}

	// A failed fetch leaves the card without a hint but does not abort
	if cards[1].Hint != "" {
		t.Errorf("Expected no hint on second card, got %q", cards[1].Hint)
	}

	if len(provider.Calls) != 2 {
		t.Errorf("Expected 2 provider calls, got %d", len(provider.Calls))
	}
}

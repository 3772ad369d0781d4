package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdavid/number-learning-app-sub000/internal"
	"github.com/vdavid/number-learning-app-sub000/internal/cli"
	"github.com/vdavid/number-learning-app-sub000/internal/hints"
	"github.com/vdavid/number-learning-app-sub000/internal/language"
	"github.com/vdavid/number-learning-app-sub000/internal/models"
	"github.com/vdavid/number-learning-app-sub000/internal/processor"
	"github.com/vdavid/number-learning-app-sub000/internal/speak"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create command tree
	cmds := cli.CreateCommands(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Attach run functions
	cmds.Say.RunE = func(cmd *cobra.Command, args []string) error {
		return runSay(args, flags)
	}
	cmds.Parse.RunE = func(cmd *cobra.Command, args []string) error {
		return runParse(args, flags)
	}
	cmds.Check.RunE = func(cmd *cobra.Command, args []string) error {
		return runCheck(args, flags)
	}
	cmds.Deck.RunE = func(cmd *cobra.Command, args []string) error {
		return runDeck(flags)
	}
	cmds.Hint.RunE = func(cmd *cobra.Command, args []string) error {
		return runHint(args, flags)
	}
	cmds.Models.RunE = func(cmd *cobra.Command, args []string) error {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Execute command
	if err := cmds.Root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSay(args []string, flags *cli.Flags) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}

	lang, err := language.Get(flags.Language)
	if err != nil {
		return err
	}

	fmt.Println(lang.NumberToWords(n))
	if flags.Romanize {
		if romanized, ok := lang.NumberToRomanized(n); ok {
			fmt.Println(romanized)
		}
	}
	return nil
}

func runParse(args []string, flags *cli.Flags) error {
	lang, err := language.Get(flags.Language)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	n, ok := lang.ParseSpokenNumber(text)
	if !ok {
		return fmt.Errorf("could not parse %q as a %s number", text, lang.Name)
	}

	fmt.Println(n)
	return nil
}

func runCheck(args []string, flags *cli.Flags) error {
	expected, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}

	lang, err := language.Get(flags.Language)
	if err != nil {
		return err
	}

	result := speak.CheckAnswer(lang, expected, args[1])
	if result.Correct {
		switch result.Verdict {
		case speak.ParsedMatch:
			fmt.Printf("Correct: parsed as %d\n", result.Parsed)
		case speak.VariationMatch:
			fmt.Printf("Correct: matches %q\n", result.Matched)
		case speak.FuzzyMatch:
			fmt.Printf("Correct (close enough to %q)\n", result.Matched)
		}
		return nil
	}

	if result.ParsedOK {
		fmt.Printf("Incorrect: heard %d, expected %d\n", result.Parsed, expected)
	} else {
		fmt.Printf("Incorrect: expected %q\n", lang.NumberToWords(expected))
	}
	os.Exit(1)
	return nil
}

func runDeck(flags *cli.Flags) error {
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	outputPath, err := proc.BuildDeck(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Anki deck created: %s\n", outputPath)
	return nil
}

func runHint(args []string, flags *cli.Flags) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	hint, err := proc.FetchHint(context.Background(), n)
	if err != nil {
		return err
	}

	fmt.Println(hint)

	// Save alongside the decks so later exports can pick it up
	cardDir := filepath.Join(flags.OutputDir, internal.GenerateCardID(flags.Language, n))
	if err := os.MkdirAll(cardDir, 0755); err != nil {
		return fmt.Errorf("failed to create card directory: %w", err)
	}
	if err := hints.SaveHint(cardDir, hint); err != nil {
		return err
	}
	fmt.Printf("Hint saved to %s\n", filepath.Join(cardDir, "hint.txt"))
	return nil
}

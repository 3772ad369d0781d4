package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdavid/number-learning-app-sub000/internal"
)

// Commands bundles the root command and its subcommands so the caller
// can attach run functions without re-looking them up by name
type Commands struct {
	Root   *cobra.Command
	Say    *cobra.Command
	Parse  *cobra.Command
	Check  *cobra.Command
	Deck   *cobra.Command
	Hint   *cobra.Command
	Models *cobra.Command
}

// CreateCommands creates and configures the numlearn command tree
func CreateCommands(flags *Flags) *Commands {
	rootCmd := &cobra.Command{
		Use:   "numlearn",
		Short: "Spoken number trainer for language learners",
		Long: `numlearn converts numbers to their spoken form and back for
language-learning drills.

It serializes integers into number words, romanizes them for learners
who cannot read the native script yet, parses noisy spoken answers, and
exports Anki flashcard decks with optional AI pronunciation hints.

Examples:
  numlearn say 12345 -l ko           # 만이천삼백사십오
  numlearn parse "femtiofyra" -l sv  # 54
  numlearn check 54 "오십사" -l ko    # grade a spoken answer
  numlearn deck --stage decades      # build an Anki deck`,
		Version: internal.Version,
	}

	cmds := &Commands{
		Root: rootCmd,
		Say: &cobra.Command{
			Use:   "say <number>",
			Short: "Convert a number to its spoken form",
			Args:  cobra.ExactArgs(1),
		},
		Parse: &cobra.Command{
			Use:   "parse <text>",
			Short: "Parse a spoken number back to digits",
			Args:  cobra.MinimumNArgs(1),
		},
		Check: &cobra.Command{
			Use:   "check <number> <answer>",
			Short: "Grade a spoken answer against the expected number",
			Args:  cobra.ExactArgs(2),
		},
		Deck: &cobra.Command{
			Use:   "deck",
			Short: "Generate an Anki deck of number drills",
			Args:  cobra.NoArgs,
		},
		Hint: &cobra.Command{
			Use:   "hint <number>",
			Short: "Fetch an AI pronunciation hint for a number",
			Args:  cobra.ExactArgs(1),
		},
		Models: &cobra.Command{
			Use:   "models",
			Short: "List available OpenAI models for the current API key",
			Args:  cobra.NoArgs,
		},
	}

	setupFlags(cmds, flags)

	rootCmd.AddCommand(cmds.Say, cmds.Parse, cmds.Check, cmds.Deck, cmds.Hint, cmds.Models)

	return cmds
}

func setupFlags(cmds *Commands, flags *Flags) {
	root := cmds.Root

	// Default output directory matches where decks land
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "numlearn", "decks")

	// Global flags
	root.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.numlearn.yaml)")
	root.PersistentFlags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language code (ko or sv)")
	root.PersistentFlags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")

	// Hint provider flags are shared by the deck and hint subcommands
	root.PersistentFlags().StringVar(&flags.HintProvider, "hint-provider", flags.HintProvider, "Hint provider: openai or gemini")
	root.PersistentFlags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for hints")
	root.PersistentFlags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for hints")

	// Say flags
	cmds.Say.Flags().BoolVarP(&flags.Romanize, "romanize", "r", false, "Print the romanized form as well")

	// Deck flags
	cmds.Deck.Flags().StringVar(&flags.Stage, "stage", "", "Curriculum stage (see 'numlearn deck --help' for names)")
	cmds.Deck.Flags().StringVar(&flags.BatchFile, "batch", "", "Read drill values from file (one value or range per line)")
	cmds.Deck.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmds.Deck.Flags().StringVarP(&flags.DeckFormat, "format", "f", flags.DeckFormat, "Deck format (apkg or csv)")
	cmds.Deck.Flags().BoolVar(&flags.WithHints, "with-hints", false, "Attach AI pronunciation hints to cards")

	bindFlagsToViper(cmds)
}

func bindFlagsToViper(cmds *Commands) {
	viper.BindPFlag("language", cmds.Root.PersistentFlags().Lookup("language"))
	viper.BindPFlag("output.directory", cmds.Root.PersistentFlags().Lookup("output"))
	viper.BindPFlag("hints.provider", cmds.Root.PersistentFlags().Lookup("hint-provider"))
	viper.BindPFlag("hints.openai_model", cmds.Root.PersistentFlags().Lookup("openai-model"))
	viper.BindPFlag("hints.gemini_model", cmds.Root.PersistentFlags().Lookup("gemini-model"))
	viper.BindPFlag("deck.name", cmds.Deck.Flags().Lookup("deck-name"))
	viper.BindPFlag("deck.format", cmds.Deck.Flags().Lookup("format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".numlearn" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".numlearn")
	}

	// Environment variables
	viper.SetEnvPrefix("NUMLEARN")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("hints.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("hints.gemini_key")
}

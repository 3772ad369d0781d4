package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateCommands(t *testing.T) {
	flags := NewFlags()
	cmds := CreateCommands(flags)

	// Test basic command properties
	if cmds.Root.Use != "numlearn" {
		t.Errorf("Expected Use to be 'numlearn', got %s", cmds.Root.Use)
	}

	if !strings.Contains(cmds.Root.Short, "Spoken number trainer") {
		t.Errorf("Expected Short description to contain 'Spoken number trainer'")
	}

	// All subcommands must be registered on the root
	subNames := []string{"say", "parse", "check", "deck", "hint", "models"}
	for _, name := range subNames {
		t.Run("subcommand_"+name, func(t *testing.T) {
			found := false
			for _, sub := range cmds.Root.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected subcommand %s to be registered", name)
			}
		})
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"language", true},
		{"output", true},
		{"hint-provider", true},
		{"openai-model", true},
		{"gemini-model", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmds.Root.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmds.Root.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}

	deckFlags := []string{"stage", "batch", "deck-name", "format", "with-hints"}
	for _, name := range deckFlags {
		t.Run("deck_flag_"+name, func(t *testing.T) {
			if cmds.Deck.Flags().Lookup(name) == nil {
				t.Errorf("Expected deck flag %s to exist", name)
			}
		})
	}

	if cmds.Say.Flags().Lookup("romanize") == nil {
		t.Error("Expected say flag romanize to exist")
	}
}

func TestSetupFlagDefaults(t *testing.T) {
	flags := NewFlags()
	cmds := CreateCommands(flags)

	// Test default output directory
	outputFlag := cmds.Root.PersistentFlags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".local", "state", "numlearn", "decks")
	if outputFlag.DefValue != expectedDefault {
		t.Errorf("Expected default output dir to be %s, got %s", expectedDefault, outputFlag.DefValue)
	}

	// Test deck format default
	formatFlag := cmds.Deck.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "apkg" {
		t.Errorf("Expected default format to be apkg, got %s", formatFlag.DefValue)
	}

	languageFlag := cmds.Root.PersistentFlags().Lookup("language")
	if languageFlag == nil {
		t.Fatal("language flag not found")
	}
	if languageFlag.DefValue != "ko" {
		t.Errorf("Expected default language to be ko, got %s", languageFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `language: sv
hints:
  provider: gemini
  openai_key: test-key
output:
  directory: /test/output`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("NUMLEARN_TEST_VAR", "test-value")
			defer os.Unsetenv("NUMLEARN_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper
			viper.Reset()

			// Set up environment
			if tt.envKey != "" {
				os.Setenv("OPENAI_API_KEY", tt.envKey)
				defer os.Unsetenv("OPENAI_API_KEY")
			} else {
				os.Unsetenv("OPENAI_API_KEY")
			}

			// Set up config
			if tt.configKey != "" {
				viper.Set("hints.openai_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	os.Unsetenv("GEMINI_API_KEY")

	if got := GetGeminiKey(); got != "" {
		t.Errorf("Expected empty Gemini key, got %s", got)
	}

	viper.Set("hints.gemini_key", "config-gemini-key")
	if got := GetGeminiKey(); got != "config-gemini-key" {
		t.Errorf("Expected config Gemini key, got %s", got)
	}

	os.Setenv("GEMINI_API_KEY", "env-gemini-key")
	defer os.Unsetenv("GEMINI_API_KEY")
	if got := GetGeminiKey(); got != "env-gemini-key" {
		t.Errorf("Expected env Gemini key, got %s", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	flags := NewFlags()
	cmds := CreateCommands(flags)

	// Set some flag values
	cmds.Root.PersistentFlags().Set("output", "/test/output")
	cmds.Root.PersistentFlags().Set("hint-provider", "gemini")
	cmds.Deck.Flags().Set("format", "csv")

	bindFlagsToViper(cmds)

	// Test that values are bound
	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}

	if viper.GetString("hints.provider") != "gemini" {
		t.Errorf("Expected hints.provider to be gemini, got %s", viper.GetString("hints.provider"))
	}

	if viper.GetString("deck.format") != "csv" {
		t.Errorf("Expected deck.format to be csv, got %s", viper.GetString("deck.format"))
	}
}

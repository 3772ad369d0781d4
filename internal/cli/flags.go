package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Language  string
	OutputDir string

	// Output flags
	Romanize bool

	// Deck flags
	DeckName   string
	DeckFormat string
	Stage      string
	BatchFile  string
	WithHints  bool

	// Hint provider flags
	HintProvider string
	OpenAIModel  string
	GeminiModel  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:     "ko",
		DeckName:     "Number Drills",
		DeckFormat:   "apkg",
		HintProvider: "openai",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
	}
}

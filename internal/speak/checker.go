package speak

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/vdavid/number-learning-app-sub000/internal/language"
)

// Verdict describes how a transcript matched the expected value.
type Verdict int

const (
	// NoMatch means the transcript does not represent the expected number.
	NoMatch Verdict = iota
	// ParsedMatch means the numeral parser recovered exactly the expected
	// value from the transcript.
	ParsedMatch
	// VariationMatch means the transcript equals one of the accepted
	// renderings of the expected value.
	VariationMatch
	// FuzzyMatch means the transcript is within edit distance of an
	// accepted rendering; good enough for spoken answers.
	FuzzyMatch
)

// Result is the outcome of checking one spoken answer.
type Result struct {
	Correct bool
	Verdict Verdict

	// Parsed holds the value the parser recovered, valid when ParsedOK.
	// A failed parse is a normal incorrect-answer signal, not an error.
	Parsed   int64
	ParsedOK bool

	// Matched is the accepted rendering the transcript matched, empty for
	// a pure parser match.
	Matched string
}

// CheckAnswer decides whether a transcribed utterance speaks the expected
// number. It tries the numeral parser first, then exact variation
// matching, then fuzzy widening over the variation set so near-miss
// transcriptions still pass.
func CheckAnswer(lang *language.Language, expected int64, transcript string) Result {
	result := Result{}
	result.Parsed, result.ParsedOK = lang.ParseSpokenNumber(transcript)
	if result.ParsedOK && result.Parsed == expected {
		result.Correct = true
		result.Verdict = ParsedMatch
		return result
	}

	cleaned := strings.ToLower(strings.Join(strings.Fields(transcript), " "))
	if cleaned == "" {
		return result
	}

	for _, variation := range lang.Variations(expected) {
		if cleaned == strings.ToLower(variation) {
			result.Correct = true
			result.Verdict = VariationMatch
			result.Matched = variation
			return result
		}
	}

	// Spaces inside the answer never count against fuzzy distance.
	compact := strings.ReplaceAll(cleaned, " ", "")
	for _, variation := range lang.Variations(expected) {
		target := strings.ToLower(strings.ReplaceAll(variation, " ", ""))
		if distance := fuzzy.LevenshteinDistance(compact, target); distance <= fuzzyBudget(target) {
			result.Correct = true
			result.Verdict = FuzzyMatch
			result.Matched = variation
			return result
		}
	}

	return result
}

// fuzzyBudget returns the edit distance allowed for a rendering. Short
// renderings get no slack: accepting "사" for "삼" would grade wrong
// answers as correct.
func fuzzyBudget(rendering string) int {
	switch n := utf8.RuneCountInString(rendering); {
	case n >= 10:
		return 2
	case n >= 5:
		return 1
	default:
		return 0
	}
}

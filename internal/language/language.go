package language

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vdavid/number-learning-app-sub000/internal/numeral"
)

// Language bundles a numeral profile with the operations the session
// layer calls. All methods are safe for concurrent use: the profile is
// immutable and the render caches are populated idempotently.
type Language struct {
	Code string // BCP 47 primary subtag, e.g. "ko"
	Name string

	profile   *numeral.Profile
	words     sync.Map // int64 -> string
	romanized sync.Map // int64 -> string
}

// NumberToWords renders n in the language's word form, used to drive TTS
// text and on-screen word display.
func (l *Language) NumberToWords(n int64) string {
	if v, ok := l.words.Load(n); ok {
		return v.(string)
	}
	s := numeral.Serialize(l.profile, n)
	l.words.Store(n, s)
	return s
}

// ParseSpokenNumber recovers an integer from a transcribed utterance. A
// false result means "no match" and must drive the incorrect-answer path,
// never an error state.
func (l *Language) ParseSpokenNumber(text string) (int64, bool) {
	return numeral.Parse(l.profile, text)
}

// NumberToRomanized renders n as a Latin-script pronunciation aid. The
// second return value is false for Latin-script languages, which have no
// romanization.
func (l *Language) NumberToRomanized(n int64) (string, bool) {
	if !l.profile.Romanized() {
		return "", false
	}
	if v, ok := l.romanized.Load(n); ok {
		return v.(string), true
	}
	s := numeral.Romanize(l.profile, n)
	l.romanized.Store(n, s)
	return s, true
}

// Variations returns the accepted renderings of n for fuzzy answer
// matching; the canonical form is always first.
func (l *Language) Variations(n int64) []string {
	return numeral.Variations(l.profile, n)
}

var registry = map[string]*Language{
	"ko": {Code: "ko", Name: "Korean", profile: koreanProfile},
	"sv": {Code: "sv", Name: "Swedish", profile: swedishProfile},
}

// Get returns the language registered under code.
func Get(code string) (*Language, error) {
	lang, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %v)", code, Codes())
	}
	return lang, nil
}

// Codes lists the registered language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

package numeral

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Parse recovers an integer from transcribed speech. The input may mix
// ASCII digits with native numeral words ("5십4", "오십4"), contain uneven
// spacing, or carry stray speech-to-text artifacts, which are skipped.
// The second return value is false when nothing numeric was recognized;
// parsing never panics or returns an error for any input.
func Parse(p *Profile, text string) (int64, bool) {
	cleaned := Clean(text)
	if cleaned == "" {
		return 0, false
	}

	// Keypad-style and pure-digit STT output bypasses the lexicon.
	if isASCIIDigits(cleaned) {
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	// Zero has no compositional form; only this fast path may produce it.
	for _, z := range p.ZeroTokens {
		if cleaned == z {
			return 0, true
		}
	}

	sign := int64(1)
	if p.NegativeToken != "" {
		if rest, ok := strings.CutPrefix(cleaned, p.NegativeToken); ok {
			sign = -1
			cleaned = strings.TrimSpace(rest)
		}
	}

	// Reduce mixed input to the fully-native form: every embedded digit
	// run is re-serialized through the same profile, so "5십4" and "오십4"
	// both become "오십사" before the scan.
	cleaned = digitRun.ReplaceAllStringFunc(cleaned, func(run string) string {
		n, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			return run
		}
		return Serialize(p, n)
	})

	total := reduce(scanTokens(p, cleaned))
	if total == 0 {
		return 0, false
	}
	return sign * total, true
}

type stepKind int

const (
	stepValue stepKind = iota
	stepMultiplier
	stepGroupMultiplier
)

// step is one recognized token of the scan: a value token (digit or
// irregular form), a single-digit multiplier tier, or a recursive grouping
// tier. A tier step carries a fused multiplicand for compound tokens like
// "ettusen", zero for the bare tier word.
type step struct {
	kind  stepKind
	value int64
	power int // tier power for the multiplier kinds
}

// scanTokens walks the cleaned string left to right, preferring the
// longest lexicon token at each position. Spaces and unrecognized runes
// are skipped so stray transcription artifacts do not abort the scan.
func scanTokens(p *Profile, s string) []step {
	var steps []step
	for i := 0; i < len(s); {
		if s[i] == ' ' {
			i++
			continue
		}
		matched := false
		for _, tok := range p.tokens {
			if strings.HasPrefix(s[i:], tok.text) {
				if tok.tier {
					kind := stepMultiplier
					if tok.rec {
						kind = stepGroupMultiplier
					}
					steps = append(steps, step{kind: kind, power: tok.power, value: tok.value})
				} else {
					steps = append(steps, step{kind: stepValue, value: tok.value})
				}
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
	}
	return steps
}

// reduce folds the recognized steps into an integer with three registers:
// current holds pending value tokens, section accumulates single-digit
// multiplier tiers, and grand holds amounts resolved by grouping tiers.
// A multiplier with no pending multiplicand counts as 1, mirroring the
// serializer's elision of an explicit "one" prefix, which is what makes
// round-tripping exact. Fused compound tokens add their own multiplicand
// before the fold, so "tjugo"+"ettusen" reads as (20+1) x 1000.
func reduce(steps []step) int64 {
	var grand, section, current int64
	for _, st := range steps {
		switch st.kind {
		case stepValue:
			// Additive, so compound decades ("tjugo" "ett") read as 21.
			current += st.value
		case stepMultiplier:
			current += st.value
			if current == 0 {
				current = 1
			}
			section += current * pow10(st.power)
			current = 0
		case stepGroupMultiplier:
			group := section + current + st.value
			if group == 0 {
				group = 1
			}
			grand += group * pow10(st.power)
			section, current = 0, 0
		}
	}
	return grand + section + current
}

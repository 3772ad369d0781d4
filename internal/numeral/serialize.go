package numeral

import "strconv"

// lexicon selects which token set a rendering uses, so the word serializer
// and the romanizer share one tier-walk implementation.
type lexicon struct {
	digit     func(d int64) string
	irregular func(v int64) (string, bool)
	tier      func(t Tier) string
}

func wordLexicon(p *Profile) lexicon {
	return lexicon{
		digit: func(d int64) string { return p.Digits[d][0] },
		irregular: func(v int64) (string, bool) {
			aliases, ok := p.Irregulars[v]
			if !ok || len(aliases) == 0 {
				return "", false
			}
			return aliases[0], true
		},
		tier: func(t Tier) string { return t.Token },
	}
}

// Serialize renders n in the profile's native word form. It never fails:
// zero yields the zero token, negatives are prefixed with the negative
// token, and internal zero tiers are skipped rather than padded (5006 is
// "five-thousand six", with no hundreds or tens marker).
func Serialize(p *Profile, n int64) string {
	if n == 0 {
		return p.ZeroTokens[0]
	}
	if n < 0 {
		return p.NegativeToken + " " + Serialize(p, -n)
	}
	return joinPieces(render(p, n, wordLexicon(p)), p.Join)
}

// render walks the tiers in descending power order and returns the word
// pieces for n > 0. Recursive tiers serialize their multiplicand with a
// recursive call; a multiplicand of exactly 1 is elided for every tier, so
// 10,000 is "만" rather than "일만".
func render(p *Profile, n int64, lex lexicon) []string {
	var pieces []string
	remaining := n
	for _, t := range p.Tiers {
		unit := pow10(t.Power)
		count := remaining / unit
		if count == 0 {
			continue
		}
		remaining %= unit
		if count != 1 {
			if t.Recursive {
				pieces = append(pieces, render(p, count, lex)...)
			} else {
				pieces = append(pieces, lex.digit(count))
			}
		}
		pieces = append(pieces, lex.tier(t))
	}
	if remaining > 0 {
		pieces = append(pieces, renderBelowTiers(remaining, lex)...)
	}
	return pieces
}

// renderBelowTiers spells the residue under the smallest tier. Languages
// with a tens tier leave a single digit here; decimal-grouped languages
// leave 1..99, covered by the irregular table (teens, decades) combined
// with a trailing digit ("femtio" + "fyra").
func renderBelowTiers(v int64, lex lexicon) []string {
	if tok, ok := lex.irregular(v); ok {
		return []string{tok}
	}
	if v >= 10 {
		decade, unit := v-v%10, v%10
		var pieces []string
		if tok, ok := lex.irregular(decade); ok {
			pieces = append(pieces, tok)
		} else {
			pieces = append(pieces, lex.digit(decade/10))
		}
		if unit > 0 {
			pieces = append(pieces, lex.digit(unit))
		}
		return pieces
	}
	return []string{lex.digit(v)}
}

// DigitString renders n as plain ASCII digits, shared by the variation set
// and deck tooling.
func DigitString(n int64) string {
	return strconv.FormatInt(n, 10)
}

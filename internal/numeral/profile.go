package numeral

import (
	"fmt"
	"sort"
)

// Tier is one multiplier place-value unit (ten, hundred, ten-thousand, ...)
// with its spoken token. A recursive tier may be preceded by a full
// sub-number ("이십만" = 20 x 10,000); a non-recursive tier takes at most a
// single digit prefix ("이백" but never "십이백").
type Tier struct {
	Power     int    // power of ten this tier represents
	Token     string // native-script token
	Roman     string // romanized token, empty for Latin-script languages
	Recursive bool
}

// Profile is the complete numeral description of one language. Profiles are
// built once at startup via NewProfile and never mutated afterwards, so a
// single Profile may be shared by any number of concurrent callers.
type Profile struct {
	ID string

	// Digits maps digit value to accepted tokens; the first token of each
	// slice is the canonical spelling. Digits[0] may be empty because a
	// compositional rendering never emits a bare zero digit.
	Digits      [10][]string
	RomanDigits [10]string

	// Irregulars lists values below 100 that have their own word instead of
	// a compositional one (Swedish "tolv", "tjugo", "femtio"). The first
	// token is canonical; later tokens are accepted alternates such as
	// colloquial abbreviated decades ("femti").
	Irregulars      map[int64][]string
	RomanIrregulars map[int64]string

	// Tiers in strictly descending Power order.
	Tiers []Tier

	ZeroTokens    []string // first token is canonical
	RomanZero     string
	NegativeToken string
	RomanNegative string

	// Join separates word pieces; native-script languages use "".
	// RomanJoin separates romanized pieces, conventionally "-".
	Join      string
	RomanJoin string

	tokens []scanToken // compiled parse table, longest token first
}

// Romanized reports whether the profile carries a romanization lexicon.
func (p *Profile) Romanized() bool {
	return p.RomanDigits[1] != ""
}

// NewProfile validates the profile invariants and compiles the parse
// table. The returned Profile must be treated as immutable.
func NewProfile(p Profile) (*Profile, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("profile ID is required")
	}
	if len(p.ZeroTokens) == 0 {
		return nil, fmt.Errorf("profile %s: zero token is required", p.ID)
	}
	for d := 1; d <= 9; d++ {
		if len(p.Digits[d]) == 0 {
			return nil, fmt.Errorf("profile %s: digit %d has no token", p.ID, d)
		}
	}
	for i, t := range p.Tiers {
		if t.Power < 1 {
			return nil, fmt.Errorf("profile %s: tier %q has power %d", p.ID, t.Token, t.Power)
		}
		if i > 0 && t.Power >= p.Tiers[i-1].Power {
			return nil, fmt.Errorf("profile %s: tiers must have strictly descending powers", p.ID)
		}
	}

	compiled, err := compileTokens(&p)
	if err != nil {
		return nil, err
	}
	p.tokens = compiled
	return &p, nil
}

// MustProfile is NewProfile for static profile data; it panics on invalid
// configuration, which is a programming error.
func MustProfile(p Profile) *Profile {
	prof, err := NewProfile(p)
	if err != nil {
		panic(err)
	}
	return prof
}

type scanToken struct {
	text  string
	tier  bool
	value int64 // digit/irregular value; for a tier token, the fused multiplicand
	power int
	rec   bool
}

func compileTokens(p *Profile) ([]scanToken, error) {
	seen := make(map[string]string) // token -> description, for collision checks
	var out []scanToken

	add := func(tok scanToken, what string) error {
		if tok.text == "" {
			return nil
		}
		if prev, dup := seen[tok.text]; dup {
			return fmt.Errorf("profile %s: token %q used by both %s and %s", p.ID, tok.text, prev, what)
		}
		seen[tok.text] = what
		out = append(out, tok)
		return nil
	}

	for d := int64(0); d <= 9; d++ {
		for _, alias := range p.Digits[d] {
			if err := add(scanToken{text: alias, value: d}, fmt.Sprintf("digit %d", d)); err != nil {
				return nil, err
			}
		}
	}
	for v, aliases := range p.Irregulars {
		tok := scanToken{value: v}
		// A compound spanning a whole tier ("ettusen" = 1 x 1000) must fold
		// like that tier, or a following lower tier would multiply it:
		// "ettusen tvåhundra" is 1200, never 1000 x 100 + 200.
		if t, count, ok := tierFor(p, v); ok {
			tok = scanToken{tier: true, power: t.Power, rec: t.Recursive, value: count}
		}
		for _, alias := range aliases {
			tok.text = alias
			if err := add(tok, fmt.Sprintf("irregular %d", v)); err != nil {
				return nil, err
			}
		}
	}
	for _, t := range p.Tiers {
		if err := add(scanToken{text: t.Token, tier: true, power: t.Power, rec: t.Recursive}, fmt.Sprintf("tier 10^%d", t.Power)); err != nil {
			return nil, err
		}
	}
	for _, z := range p.ZeroTokens {
		// Zero aliases may double as the digit-0 token.
		if _, dup := seen[z]; dup {
			continue
		}
		seen[z] = "zero"
		out = append(out, scanToken{text: z, value: 0})
	}

	// Longest token first so the scanner prefers "femtio" over "fem".
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].text) > len(out[j].text)
	})
	return out, nil
}

// tierFor matches an irregular value that is a single-digit multiple of a
// tier unit. Sub-tier irregulars (teens, decades) do not match and stay
// plain value tokens.
func tierFor(p *Profile, v int64) (Tier, int64, bool) {
	for _, t := range p.Tiers {
		unit := pow10(t.Power)
		if v >= unit && v%unit == 0 && v/unit <= 9 {
			return t, v / unit, true
		}
	}
	return Tier{}, 0, false
}

func pow10(power int) int64 {
	n := int64(1)
	for i := 0; i < power; i++ {
		n *= 10
	}
	return n
}

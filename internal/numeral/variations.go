package numeral

// Variations returns the accepted renderings of n: the canonical word
// form first, then the plain digit string and known alternate forms (an
// explicit "one" prefix before a tier, abbreviated decades, aliased digit
// spellings, fused compound spellings). The set is additive; it always
// contains the canonical form and is used only to widen fuzzy matching in
// the speak-mode validator.
func Variations(p *Profile, n int64) []string {
	canonical := Serialize(p, n)
	out := []string{canonical, DigitString(n)}

	if n == 0 {
		out = append(out, p.ZeroTokens...)
		return dedup(out)
	}

	neg := ""
	if n < 0 {
		neg = p.NegativeToken + " "
		n = -n
	}

	explicit := neg + joinPieces(renderExplicitOne(p, n, wordLexicon(p)), p.Join)
	out = append(out, explicit, collapseTriples(explicit))
	if alt := joinPieces(render(p, n, altWordLexicon(p)), p.Join); alt != "" {
		out = append(out, neg+alt)
	}
	if fused := collapseTriples(canonical); fused != canonical {
		out = append(out, fused)
	}
	return dedup(out)
}

// renderExplicitOne renders n without the "one" elision, producing forms
// like "일백" and "etthundra" that learners commonly give as answers.
func renderExplicitOne(p *Profile, n int64, lex lexicon) []string {
	var pieces []string
	remaining := n
	for _, t := range p.Tiers {
		unit := pow10(t.Power)
		count := remaining / unit
		if count == 0 {
			continue
		}
		remaining %= unit
		if t.Recursive && count > 1 {
			pieces = append(pieces, renderExplicitOne(p, count, lex)...)
		} else {
			pieces = append(pieces, lex.digit(count))
		}
		pieces = append(pieces, lex.tier(t))
	}
	if remaining > 0 {
		pieces = append(pieces, renderBelowTiers(remaining, lex)...)
	}
	return pieces
}

// altWordLexicon prefers the second accepted spelling of digits and
// irregular values where one exists, covering colloquial abbreviated
// decades such as Swedish "femti".
func altWordLexicon(p *Profile) lexicon {
	pick := func(aliases []string) string {
		if len(aliases) > 1 {
			return aliases[1]
		}
		return aliases[0]
	}
	return lexicon{
		digit: func(d int64) string { return pick(p.Digits[d]) },
		irregular: func(v int64) (string, bool) {
			aliases, ok := p.Irregulars[v]
			if !ok || len(aliases) == 0 {
				return "", false
			}
			return pick(aliases), true
		},
		tier: func(t Tier) string { return t.Token },
	}
}

// collapseTriples reduces any run of three identical letters to two, the
// Swedish compounding rule that turns "ett"+"tusen" into "ettusen".
func collapseTriples(s string) string {
	runes := []rune(s)
	out := runes[:0]
	for _, r := range runes {
		n := len(out)
		if n >= 2 && out[n-1] == r && out[n-2] == r {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

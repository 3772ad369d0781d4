package numeral

// romanLexicon mirrors wordLexicon over the Latin-script transcription
// tokens of the profile.
func romanLexicon(p *Profile) lexicon {
	return lexicon{
		digit: func(d int64) string { return p.RomanDigits[d] },
		irregular: func(v int64) (string, bool) {
			tok, ok := p.RomanIrregulars[v]
			return tok, ok
		},
		tier: func(t Tier) string { return t.Roman },
	}
}

// Romanize renders n as a Latin-script phonetic transcription, used for
// on-screen pronunciation hints. It follows the same tier walk and elision
// rules as Serialize, joined with the profile's romanization separator.
// It returns "" for profiles without a romanization lexicon.
func Romanize(p *Profile, n int64) string {
	if !p.Romanized() {
		return ""
	}
	if n == 0 {
		return p.RomanZero
	}
	if n < 0 {
		return joinPieces([]string{p.RomanNegative, Romanize(p, -n)}, p.RomanJoin)
	}
	return joinPieces(render(p, n, romanLexicon(p)), p.RomanJoin)
}

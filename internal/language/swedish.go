package language

import "github.com/vdavid/number-learning-app-sub000/internal/numeral"

// swedishProfile is a decimal-grouped system: every tier above a hundred
// takes a full sub-number as multiplicand ("tolvtusen"), while the values
// below a hundred are covered by irregular teen and decade words combined
// with a trailing digit ("femtio" + "fyra"). Latin script, so no
// romanization lexicon.
//
// The 1000 entry accepts the fused spelling "ettusen"; it compiles as a
// tusen tier step with an implicit one, so a trailing "tvåhundra" adds
// rather than multiplies. Serialization reaches the tier only through the
// tusen word, never through the irregular table.
var swedishProfile = numeral.MustProfile(numeral.Profile{
	ID: "sv",
	Digits: [10][]string{
		1: {"ett", "en"},
		2: {"två"},
		3: {"tre"},
		4: {"fyra"},
		5: {"fem"},
		6: {"sex"},
		7: {"sju"},
		8: {"åtta"},
		9: {"nio"},
	},
	Irregulars: map[int64][]string{
		10:   {"tio"},
		11:   {"elva"},
		12:   {"tolv"},
		13:   {"tretton"},
		14:   {"fjorton"},
		15:   {"femton"},
		16:   {"sexton"},
		17:   {"sjutton"},
		18:   {"arton"},
		19:   {"nitton"},
		20:   {"tjugo"},
		30:   {"trettio", "tretti"},
		40:   {"fyrtio", "förti"},
		50:   {"femtio", "femti"},
		60:   {"sextio", "sexti"},
		70:   {"sjuttio", "sjutti"},
		80:   {"åttio", "åtti"},
		90:   {"nittio", "nitti"},
		1000: {"ettusen"},
	},
	Tiers: []numeral.Tier{
		{Power: 12, Token: "biljon", Recursive: true},
		{Power: 9, Token: "miljard", Recursive: true},
		{Power: 6, Token: "miljon", Recursive: true},
		{Power: 3, Token: "tusen", Recursive: true},
		{Power: 2, Token: "hundra"},
	},
	ZeroTokens:    []string{"noll"},
	NegativeToken: "minus",
	Join:          "",
})

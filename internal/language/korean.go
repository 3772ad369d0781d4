package language

import "github.com/vdavid/number-learning-app-sub000/internal/numeral"

// koreanProfile is the Sino-Korean numeral system: single-digit tiers for
// ten, hundred and thousand, and grouping tiers every fourth power (만, 억,
// 조), whose multiplicand is itself a full number. Romanization follows
// Revised Romanization of Korean.
var koreanProfile = numeral.MustProfile(numeral.Profile{
	ID: "ko",
	Digits: [10][]string{
		1: {"일"},
		2: {"이"},
		3: {"삼"},
		4: {"사"},
		5: {"오"},
		6: {"육"},
		7: {"칠"},
		8: {"팔"},
		9: {"구"},
	},
	RomanDigits: [10]string{
		1: "il", 2: "i", 3: "sam", 4: "sa", 5: "o",
		6: "yuk", 7: "chil", 8: "pal", 9: "gu",
	},
	Tiers: []numeral.Tier{
		{Power: 12, Token: "조", Roman: "jo", Recursive: true},
		{Power: 8, Token: "억", Roman: "eok", Recursive: true},
		{Power: 4, Token: "만", Roman: "man", Recursive: true},
		{Power: 3, Token: "천", Roman: "cheon"},
		{Power: 2, Token: "백", Roman: "baek"},
		{Power: 1, Token: "십", Roman: "sip"},
	},
	ZeroTokens:    []string{"영", "공"},
	RomanZero:     "yeong",
	NegativeToken: "마이너스",
	RomanNegative: "maineoseu",
	Join:          "",
	RomanJoin:     "-",
})

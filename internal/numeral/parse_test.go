package numeral

import "testing"

func TestReduce(t *testing.T) {
	digit := func(v int64) step { return step{kind: stepValue, value: v} }
	mult := func(power int) step { return step{kind: stepMultiplier, power: power} }
	group := func(power int) step { return step{kind: stepGroupMultiplier, power: power} }
	fused := func(power int, v int64) step { return step{kind: stepGroupMultiplier, power: power, value: v} }

	tests := []struct {
		name  string
		steps []step
		want  int64
	}{
		{"nothing", nil, 0},
		{"single digit", []step{digit(7)}, 7},
		{"tens", []step{digit(5), mult(1), digit(4)}, 54},
		{"bare multiplier counts as one", []step{mult(2)}, 100},
		{"bare group counts as one", []step{group(4)}, 10000},
		{"group absorbs section", []step{digit(2), mult(1), group(4)}, 200000},
		{"group absorbs pending digit", []step{digit(3), group(4)}, 30000},
		{
			"section after group stays outside",
			[]step{group(4), digit(2), mult(3), digit(3), mult(2), digit(4), mult(1), digit(5)},
			12345,
		},
		{
			"higher group then lower group",
			[]step{digit(1), group(8), digit(2), mult(3), group(4)},
			120000000,
		},
		{
			"fused compound folds before lower tier",
			[]step{fused(3, 1), digit(2), mult(2)},
			1200,
		},
		{
			"fused compound adds to pending multiplicand",
			[]step{digit(2), mult(1), fused(3, 1)},
			21000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reduce(tt.steps); got != tt.want {
				t.Errorf("reduce() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDigitFastPath(t *testing.T) {
	p := testProfile(t)

	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"0", 0, true},
		{"54", 54, true},
		{"1000000000000", 1000000000000, true},
		// Overflows int64; no partial value must leak out.
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := Parse(p, tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Parse(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseZeroOnlyViaZeroToken(t *testing.T) {
	p := testProfile(t)

	if got, ok := Parse(p, "영"); !ok || got != 0 {
		t.Errorf("Parse(영) = %d, %v; want 0, true", got, ok)
	}
	// A scan that recognizes nothing must fail rather than report zero.
	if _, ok := Parse(p, "???"); ok {
		t.Error("Parse(???) reported a match")
	}
}

func TestScanSkipsUnrecognizedRunes(t *testing.T) {
	p := testProfile(t)

	// Stray STT artifacts around and between tokens are ignored.
	if got, ok := Parse(p, "어 오십...사!"); !ok || got != 54 {
		t.Errorf("Parse = %d, %v; want 54, true", got, ok)
	}
}

func TestParseNormalizesMixedDigits(t *testing.T) {
	p := testProfile(t)

	inputs := []string{"5십4", "오십4", "5십사", "오십사", "５십４"}
	for _, in := range inputs {
		got, ok := Parse(p, in)
		if !ok || got != 54 {
			t.Errorf("Parse(%q) = %d, %v; want 54, true", in, got, ok)
		}
	}
}

func TestCleanNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim and collapse", "  오십   사  ", "오십 사"},
		{"tabs and newlines", "오\t십\n사", "오 십 사"},
		{"full-width digits", "５４", "54"},
		{"empty", "", ""},
		{"whitespace only", " \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

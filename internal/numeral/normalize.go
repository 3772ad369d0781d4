package numeral

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Clean prepares raw transcript text for parsing: Unicode NFC composition
// (speech-to-text sometimes emits decomposed Hangul jamo), full-width digit
// and punctuation folding, and whitespace collapsing.
func Clean(text string) string {
	text = norm.NFC.String(width.Narrow.String(text))
	return collapseSpaces(text)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isASCIIDigits reports whether s consists solely of '0'..'9'.
func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// joinPieces joins non-empty pieces with sep, which also collapses any
// doubled separators and trims leading or trailing ones.
func joinPieces(pieces []string, sep string) string {
	kept := pieces[:0]
	for _, piece := range pieces {
		if piece != "" {
			kept = append(kept, piece)
		}
	}
	return strings.Join(kept, sep)
}

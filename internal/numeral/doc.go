// Package numeral implements a bidirectional converter between integers
// and a language's spoken numeral form. A Profile describes one language's
// numeral system (digit lexicon, multiplier tiers, irregular forms); the
// serializer, romanizer and parser are pure functions over a Profile.
//
// The parser is deliberately tolerant: it accepts mixed digit/word input,
// uneven spacing and stray characters, as produced by speech-to-text.
package numeral

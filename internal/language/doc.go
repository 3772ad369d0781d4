// Package language holds the shipped numeral profiles and the entry
// points the session layer consumes: NumberToWords, ParseSpokenNumber and
// NumberToRomanized. Profiles are built once at package initialization
// and shared; rendered words are memoized per language and value.
package language

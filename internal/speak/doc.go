// Package speak validates transcribed spoken answers against an expected
// number. It layers the tolerant numeral parser, the accepted-variation
// set and fuzzy string matching, in that order, so speech-to-text noise
// does not fail a learner who said the right number.
package speak

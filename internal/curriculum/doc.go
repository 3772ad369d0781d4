// Package curriculum provides the drill value sequences deck generation
// works from: named difficulty stages covering the numeral system tier by
// tier, and a batch file format for custom value lists.
package curriculum

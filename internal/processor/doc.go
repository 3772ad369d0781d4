// Package processor orchestrates deck generation. It resolves drill
// values from a curriculum stage or batch file, renders cards through
// the language layer, attaches optional AI pronunciation hints, and
// writes the deck in CSV or APKG format.
package processor

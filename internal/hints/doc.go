// Package hints fetches learner-oriented pronunciation breakdowns for a
// numeral's word form using OpenAI's chat models, with Google Gemini as an
// optional fallback. Hints are shown after an answer is revealed and are
// saved beside the card files.
package hints

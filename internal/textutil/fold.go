package textutil

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold produces a comparison key: normalized, diacritics stripped and
// Unicode case folded, so "Médio", "MEDIO" and " medio " share a key.
// Transformers are stateful, so a fresh chain is built per call.
func Fold(s string) string {
	s = Normalize(s)
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

package numerology

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName strips combining marks and upper-cases the name, so "José"
// scores like "JOSE" and vowelled Arabic scores like its bare letters.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	return cases.Upper(language.Und).String(stripped)
}

// Letters returns the normalised runes of name that the table assigns a value.
func Letters(name string, table LetterTable) []rune {
	var out []rune
	for _, r := range NormalizeName(name) {
		if table.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

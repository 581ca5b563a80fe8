// Package textnorm canonicalizes free-form catalog and user text for
// accent-insensitive comparison.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes accented characters and drops the combining marks.
// The combining cedilla (U+0327) is a nonspacing mark too, so ç folds to c
// without a special case.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips accents and cedillas, and trims surrounding
// whitespace. It is a pure function and idempotent: normalizing an already
// normalized string returns it unchanged.
func Normalize(text string) string {
	result, _, err := transform.String(stripAccents, text)
	if err != nil {
		// transform.String only fails on a transformer error; the chain above
		// never reports one, but fall back to the raw input to stay total.
		result = text
	}
	return strings.TrimSpace(strings.ToLower(result))
}

// Words normalizes text and splits it into non-empty tokens on runs of
// whitespace.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}

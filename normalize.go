package geocanon

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// curlyApostrophes are the non-ASCII apostrophe glyphs folded to "'" by
// step 5 of Normalize.
const curlyApostrophes = "’ʼʻ"

// punctRunes are internal punctuation marks collapsed to whitespace
// alongside literal whitespace, per §4.A step 4.
const punctRunes = "-_.,"

// Normalize produces the canonical lookup key for a place-name token:
// NFKD-decompose, strip combining marks, lowercase, collapse whitespace
// and the punctuation runes {-, _, ., ,} into single spaces, fold curly
// apostrophes to ASCII, and trim.
//
// Normalize is idempotent and only normalized strings are ever compared
// against each other — both indexed names (at build time) and query
// tokens (at query time) pass through here.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastWasSpace := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if strings.ContainsRune(curlyApostrophes, r) {
			r = '\''
		}
		r = unicode.ToLower(r)

		if unicode.IsSpace(r) || strings.ContainsRune(punctRunes, r) {
			if lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// Package match compares free-text answers against accepted translations
// with tolerance for small spelling and morphology differences.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// articles are ignored when reducing an answer to its base form.
var articles = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {},
	"un": {}, "una": {}, "unos": {}, "unas": {},
	"the": {}, "a": {}, "an": {},
}

// stripDiacritics decomposes to NFD and drops combining marks,
// so "árbol" and "arbol" compare equal.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases, strips diacritics and collapses whitespace.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	if out, _, err := transform.String(stripDiacritics, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// ToBaseForm normalizes, drops article tokens and singularizes the last
// remaining word. Returns "" for empty or whitespace-only input.
func ToBaseForm(raw string) string {
	s := Normalize(raw)
	if s == "" {
		return ""
	}

	var kept []string
	for _, word := range strings.Fields(s) {
		if _, isArticle := articles[word]; isArticle {
			continue
		}
		kept = append(kept, word)
	}
	if len(kept) == 0 {
		return ""
	}

	kept[len(kept)-1] = singularize(kept[len(kept)-1])
	return strings.Join(kept, " ")
}

// singularize applies the trainer's crude plural-stripping rule: drop a
// trailing "es" on words longer than 3 runes, otherwise a trailing "s" on
// words longer than 2 runes. It is intentionally naive and mishandles
// words whose singular ends in "es".
func singularize(word string) string {
	r := []rune(word)
	switch {
	case len(r) > 3 && strings.HasSuffix(word, "es"):
		return string(r[:len(r)-2])
	case len(r) > 2 && strings.HasSuffix(word, "s"):
		return string(r[:len(r)-1])
	}
	return word
}

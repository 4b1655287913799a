package match

import "strings"

// answerDelimiters separate alternative accepted translations inside a
// single gold string, e.g. "carro;coche|auto".
const answerDelimiters = ";|/"

// IsFuzzyEqual reports whether user and gold reduce to the same base form,
// allowing 1 edit for short answers (<= 4 runes) and 2 for longer ones.
// The short-word cutoff keeps pairs like "no"/"so" apart.
func IsFuzzyEqual(user, gold string) bool {
	u := ToBaseForm(user)
	g := ToBaseForm(gold)

	if u == "" || g == "" {
		return false
	}
	if u == g {
		return true
	}

	maxLen := len([]rune(u))
	if l := len([]rune(g)); l > maxLen {
		maxLen = l
	}

	allowed := 2
	if maxLen <= 4 {
		allowed = 1
	}
	return Levenshtein(u, g) <= allowed
}

// Matches reports whether the answer fuzzily equals any of the accepted
// translations in gold. An empty gold string never matches.
func Matches(user, gold string) bool {
	if gold == "" {
		return false
	}

	for _, candidate := range strings.FieldsFunc(gold, func(r rune) bool {
		return strings.ContainsRune(answerDelimiters, r)
	}) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if IsFuzzyEqual(user, candidate) {
			return true
		}
	}
	return false
}

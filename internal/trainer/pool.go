package trainer

import (
	"fmt"

	"vocadrill/internal/catalog"
)

// Mode is a practice mode. Each mode keeps its own done-set per session
// key, so switching modes never hides cards from another mode.
type Mode string

const (
	// ModeWrite is the two-attempt free-text mode.
	ModeWrite Mode = "write"
	// ModeFlashcard is the single-shot multiple-choice mode.
	ModeFlashcard Mode = "flashcard"
	// ModeHard drills only terms with at least one terminal failure.
	ModeHard Mode = "hard"
)

// SessionKey scopes done-sets to one (language, level, category) drill.
type SessionKey struct {
	Language string
	Level    string
	Category string
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s_%s_%s", k.Language, k.Level, k.Category)
}

// weightedItem annotates a catalog entry with its selection weight.
type weightedItem struct {
	item   catalog.Item
	weight int
}

// doneSet tracks finished terms per session key for one mode.
type doneSet map[string]map[string]bool

func (d doneSet) mark(key SessionKey, term string) {
	session := d[key.String()]
	if session == nil {
		session = make(map[string]bool)
		d[key.String()] = session
	}
	session[term] = true
}

func (d doneSet) contains(key SessionKey, term string) bool {
	return d[key.String()][term]
}

func (d doneSet) clear(key SessionKey) {
	delete(d, key.String())
}

// sessionItems returns the weighted catalog entries for the current
// session key, before any mode-specific exclusion.
func (t *Trainer) sessionItems() []weightedItem {
	filtered := t.catalog.Filter(t.key.Language, t.key.Level, t.key.Category)
	items := make([]weightedItem, 0, len(filtered))
	for _, item := range filtered {
		items = append(items, weightedItem{item: item, weight: t.mastery.Weight(item.Term)})
	}
	return items
}

// buildPool derives the live candidate set for a mode: session items minus
// the mode's done-set, restricted to hard words in hard mode and to the
// retry subset in flashcard mode when one is active. An empty pool means
// the session is complete.
func (t *Trainer) buildPool(mode Mode) []weightedItem {
	var pool []weightedItem
	for _, candidate := range t.sessionItems() {
		term := candidate.item.Term
		switch mode {
		case ModeFlashcard:
			if t.flashDone.contains(t.key, term) {
				continue
			}
			if t.flashRepeat != nil && !t.flashRepeat[term] {
				continue
			}
		case ModeHard:
			if t.hardWords[term] == 0 || t.hardDone.contains(t.key, term) {
				continue
			}
		default:
			if t.writeDone.contains(t.key, term) {
				continue
			}
		}
		pool = append(pool, candidate)
	}
	return pool
}

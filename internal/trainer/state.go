package trainer

import "vocadrill/internal/catalog"

// Current returns the question being asked, or nil when the active pool is
// exhausted and the mode session is complete.
func (t *Trainer) Current() *catalog.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	item := *t.current
	return &item
}

// Mode returns the active practice mode.
func (t *Trainer) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Key returns the active session key.
func (t *Trainer) Key() SessionKey {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.key
}

// Attempt returns 0 before the first grading of the current question and
// 1 after a first miss.
func (t *Trainer) Attempt() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempt
}

// Feedback returns the grading outcome of the current question.
func (t *Trainer) Feedback() Feedback {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.feedback
}

// Motivation returns the motivational message surfaced by the last miss,
// or "" when none is active.
func (t *Trainer) Motivation() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.motivation
}

// Streak returns the consecutive correct gradings in write/hard mode.
func (t *Trainer) Streak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.streak
}

// AnsweredCount returns the global correct-grading counter.
func (t *Trainer) AnsweredCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.answeredCount
}

// WrongCount returns the global miss counter.
func (t *Trainer) WrongCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrongCount
}

// Options returns the multiple-choice options for the current question.
func (t *Trainer) Options() []ChoiceOption {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChoiceOption, len(t.flashOptions))
	copy(out, t.flashOptions)
	return out
}

// FlashStatus returns the display state of the current flashcard question.
func (t *Trainer) FlashStatus() FlashStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flashStatus
}

// FlashSelected returns the index chosen on the current flashcard
// question, or -1 before a choice is made.
func (t *Trainer) FlashSelected() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flashSelected
}

// FlashSession returns a copy of the running flashcard session stats.
func (t *Trainer) FlashSession() FlashStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := FlashStats{
		Correct:       t.flashStats.Correct,
		Wrong:         t.flashStats.Wrong,
		UniqueCorrect: make(map[string]bool, len(t.flashStats.UniqueCorrect)),
		FailedTerms:   make(map[string]bool, len(t.flashStats.FailedTerms)),
	}
	for term := range t.flashStats.UniqueCorrect {
		stats.UniqueCorrect[term] = true
	}
	for term := range t.flashStats.FailedTerms {
		stats.FailedTerms[term] = true
	}
	return stats
}

// PoolSize returns how many candidates remain in the active mode's pool.
func (t *Trainer) PoolSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buildPool(t.mode))
}

// SessionSize returns the number of items matching the session key before
// done-set exclusion.
func (t *Trainer) SessionSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessionItems())
}

// MasteryRecord returns the mastery record for a term.
func (t *Trainer) MasteryRecord(term string) Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mastery.Get(term)
}

// Weight returns the selection weight for a term.
func (t *Trainer) Weight(term string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mastery.Weight(term)
}

// HardWords returns a copy of the hard-word counters.
func (t *Trainer) HardWords() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.hardWords))
	for term, count := range t.hardWords {
		out[term] = count
	}
	return out
}

// Snapshot returns a copy of the durable state, for reporting and final
// saves on shutdown.
func (t *Trainer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

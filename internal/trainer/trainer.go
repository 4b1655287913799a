package trainer

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"vocadrill/internal/catalog"
	"vocadrill/internal/match"
	"vocadrill/internal/motivation"
)

// Feedback classifies the outcome of grading one free-text answer.
type Feedback string

const (
	FeedbackNone        Feedback = ""
	FeedbackOK          Feedback = "ok"
	FeedbackFirstWrong  Feedback = "first_wrong"
	FeedbackSecondWrong Feedback = "second_wrong"
)

// FlashStatus is the display state of the current flashcard question.
type FlashStatus string

const (
	FlashIdle    FlashStatus = "idle"
	FlashCorrect FlashStatus = "correct"
	FlashWrong   FlashStatus = "wrong"
)

// FlashStats accumulates results over one flashcard session.
type FlashStats struct {
	Correct       int
	Wrong         int
	UniqueCorrect map[string]bool
	FailedTerms   map[string]bool
}

func newFlashStats() FlashStats {
	return FlashStats{
		UniqueCorrect: make(map[string]bool),
		FailedTerms:   make(map[string]bool),
	}
}

const (
	defaultCorrectDelay = 1300 * time.Millisecond
	defaultFlashDelay   = 700 * time.Millisecond
	saveTimeout         = 10 * time.Second
	motivationEvery     = 5
)

// Trainer owns all drilling state for one user session: the catalog, the
// mastery store, hard-word counters, per-mode done-sets and the current
// question. Every entry point takes the trainer mutex, so a concurrent
// host cannot interleave two gradings.
type Trainer struct {
	mu sync.Mutex

	catalog *catalog.Catalog
	mastery *MasteryStore
	rng     *rand.Rand
	logger  *slog.Logger

	repo   Repository
	userID string

	key  SessionKey
	mode Mode

	writeDone doneSet
	flashDone doneSet
	hardDone  doneSet

	hardWords map[string]int

	answeredCount int
	wrongCount    int
	streak        int

	current    *catalog.Item
	attempt    int
	feedback   Feedback
	motivation string
	messages   []string

	flashOptions  []ChoiceOption
	flashSelected int
	flashStatus   FlashStatus
	flashStats    FlashStats
	flashRepeat   map[string]bool

	advanceGen   uint64
	schedule     func(d time.Duration, fn func())
	correctDelay time.Duration
	flashDelay   time.Duration

	// saveMu serializes the background saves; saveSeq (under mu) and
	// saveDone (under saveMu) order snapshots so a slow older save can
	// never overwrite a newer one.
	saveMu   sync.Mutex
	saveSeq  uint64
	saveDone uint64
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithRand sets the random source used for selection and shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(t *Trainer) { t.rng = rng }
}

// WithRepository attaches durable storage for the given user identity.
func WithRepository(repo Repository, userID string) Option {
	return func(t *Trainer) {
		t.repo = repo
		t.userID = userID
	}
}

// WithMessages overrides the motivational message list.
func WithMessages(messages []string) Option {
	return func(t *Trainer) {
		if len(messages) > 0 {
			t.messages = messages
		}
	}
}

// WithAdvanceDelays overrides the auto-advance delays after a correct
// write/hard answer and after a flashcard answer.
func WithAdvanceDelays(correct, flash time.Duration) Option {
	return func(t *Trainer) {
		t.correctDelay = correct
		t.flashDelay = flash
	}
}

// WithScheduler replaces the timer implementation. Tests use this to fire
// or drop scheduled advances deterministically.
func WithScheduler(schedule func(d time.Duration, fn func())) Option {
	return func(t *Trainer) { t.schedule = schedule }
}

// WithLogger sets the logger for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) { t.logger = logger }
}

// New creates a trainer over a loaded catalog, starting in write mode at
// (language, A1, all categories).
func New(c *catalog.Catalog, language string, opts ...Option) *Trainer {
	t := &Trainer{
		catalog: c,
		mastery: NewMasteryStore(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  slog.Default(),

		key:  SessionKey{Language: language, Level: "A1", Category: catalog.AllCategories},
		mode: ModeWrite,

		writeDone: make(doneSet),
		flashDone: make(doneSet),
		hardDone:  make(doneSet),
		hardWords: make(map[string]int),

		messages:   motivation.DefaultMessages(),
		flashStats: newFlashStats(),

		correctDelay: defaultCorrectDelay,
		flashDelay:   defaultFlashDelay,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.schedule == nil {
		t.schedule = func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		}
	}
	return t
}

// LoadProgress restores the snapshot from the repository. It must be
// called before grading starts so stored progress cannot race a session
// already in flight.
func (t *Trainer) LoadProgress(ctx context.Context) error {
	if t.repo == nil {
		return nil
	}
	snapshot, err := t.repo.Load(ctx, t.userID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.mastery.Restore(snapshot.Progress)
	t.hardWords = make(map[string]int, len(snapshot.HardWords))
	for term, count := range snapshot.HardWords {
		t.hardWords[term] = count
	}
	t.answeredCount = snapshot.AnsweredCount
	t.wrongCount = snapshot.WrongCount
	t.streak = snapshot.Streak
	return nil
}

// Start selects the first question. Call after LoadProgress.
func (t *Trainer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextCardLocked()
}

// SetMode switches the practice mode and selects a new question.
// Entering flashcard mode resets the flashcard session; entering hard mode
// clears the hard done-set for the current session key.
func (t *Trainer) SetMode(mode Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = mode
	t.resetModeSessionLocked()
	t.nextCardLocked()
}

// SetLevel changes the session level and restarts the question flow.
func (t *Trainer) SetLevel(level string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.key.Level = level
	t.resetModeSessionLocked()
	t.nextCardLocked()
}

// SetCategory changes the session category and restarts the question flow.
func (t *Trainer) SetCategory(category string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.key.Category = category
	t.resetModeSessionLocked()
	t.nextCardLocked()
}

// SetLanguage switches the catalog namespace and resets the session back
// to level A1 and all categories.
func (t *Trainer) SetLanguage(language string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.key = SessionKey{Language: language, Level: "A1", Category: catalog.AllCategories}
	t.resetModeSessionLocked()
	t.nextCardLocked()
}

// resetModeSessionLocked reproduces the session resets that happen when
// the mode or session key changes: flashcard sessions start over and the
// hard done-set is cleared. The write done-set persists until reset
// externally.
func (t *Trainer) resetModeSessionLocked() {
	switch t.mode {
	case ModeFlashcard:
		t.flashStats = newFlashStats()
		t.flashRepeat = nil
		t.flashDone.clear(t.key)
	case ModeHard:
		t.hardDone.clear(t.key)
	}
}

// Check grades a free-text answer in write or hard mode and returns the
// resulting feedback. A correct answer schedules an auto-advance; a
// terminal failure does not, so the caller must invoke RevealAndNext.
// Flashcard questions are ungraded and go through AnswerChoice, so Check
// refuses to grade while that mode is active.
func (t *Trainer) Check(answer string) Feedback {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil || t.mode == ModeFlashcard {
		return FeedbackNone
	}

	if match.Matches(answer, t.current.Translation) {
		t.feedback = FeedbackOK
		t.mastery.Grade(t.current.Term, true)
		t.streak++
		t.answeredCount++

		switch t.mode {
		case ModeWrite:
			t.writeDone.mark(t.key, t.current.Term)
		case ModeHard:
			t.hardDone.mark(t.key, t.current.Term)
		}

		t.persistLocked()
		t.scheduleAdvanceLocked(t.correctDelay)
		return t.feedback
	}

	t.wrongCount++
	if t.wrongCount%motivationEvery == 0 {
		t.motivation = t.messages[t.rng.Intn(len(t.messages))]
	} else {
		t.motivation = ""
	}

	if t.attempt == 0 {
		t.attempt = 1
		t.feedback = FeedbackFirstWrong
	} else {
		t.feedback = FeedbackSecondWrong
		t.streak = 0
		t.mastery.Grade(t.current.Term, false)
		t.hardWords[t.current.Term]++
	}

	t.persistLocked()
	return t.feedback
}

// RevealAndNext continues after a terminal failure (or any paused state).
func (t *Trainer) RevealAndNext() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempt = 0
	t.feedback = FeedbackNone
	t.motivation = ""
	t.nextCardLocked()
}

// AnswerChoice grades a flashcard selection. Flashcards are ungraded
// practice: they update hard words, the flashcard done-set and the session
// stats, but never the mastery box, streak or answered counter. The next
// question is scheduled regardless of the outcome.
func (t *Trainer) AnswerChoice(index int) FlashStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil || index < 0 || index >= len(t.flashOptions) {
		return FlashIdle
	}

	t.flashSelected = index
	if t.flashOptions[index].Correct {
		t.flashStatus = FlashCorrect
		t.flashDone.mark(t.key, t.current.Term)
		t.flashStats.Correct++
		t.flashStats.UniqueCorrect[t.current.Term] = true
	} else {
		t.flashStatus = FlashWrong
		t.hardWords[t.current.Term]++
		t.flashStats.Wrong++
		t.flashStats.FailedTerms[t.current.Term] = true
		t.persistLocked()
	}

	t.scheduleAdvanceLocked(t.flashDelay)
	return t.flashStatus
}

// RepeatAllFlash restarts the flashcard session over the full pool.
func (t *Trainer) RepeatAllFlash() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flashStats = newFlashStats()
	t.flashRepeat = nil
	t.flashDone.clear(t.key)
	t.nextCardLocked()
}

// RepeatFailedFlash restarts the flashcard session over only the terms that
// failed so far. With no failures it behaves like RepeatAllFlash.
func (t *Trainer) RepeatFailedFlash() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.flashStats.FailedTerms) == 0 {
		t.flashStats = newFlashStats()
		t.flashRepeat = nil
		t.flashDone.clear(t.key)
		t.nextCardLocked()
		return
	}

	repeat := make(map[string]bool, len(t.flashStats.FailedTerms))
	for term := range t.flashStats.FailedTerms {
		repeat[term] = true
	}
	t.flashRepeat = repeat

	failed := t.flashStats.FailedTerms
	t.flashStats = newFlashStats()
	t.flashStats.FailedTerms = failed

	t.flashDone.clear(t.key)
	t.nextCardLocked()
}

// Next abandons the current question and selects a new one.
func (t *Trainer) Next() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextCardLocked()
}

// nextCardLocked picks the next question from the active mode's pool and
// resets the per-question state. When the pool is exhausted the current
// question becomes nil, which callers treat as "session complete".
// Bumping the advance generation invalidates any timer still in flight.
func (t *Trainer) nextCardLocked() {
	t.advanceGen++

	excludeTerm := ""
	if t.current != nil {
		excludeTerm = t.current.Term
	}

	picked := pickFromPool(t.rng, t.buildPool(t.mode), excludeTerm)

	t.attempt = 0
	t.feedback = FeedbackNone
	t.motivation = ""
	t.flashStatus = FlashIdle
	t.flashSelected = -1

	if picked == nil {
		t.current = nil
		t.flashOptions = nil
		return
	}

	item := picked.item
	t.current = &item
	t.flashOptions = t.prepareChoices(item.Term, item.Translation)
}

// scheduleAdvanceLocked arms the auto-advance timer. The generation
// counter guards against a stale timer firing after the session moved on.
func (t *Trainer) scheduleAdvanceLocked(delay time.Duration) {
	t.advanceGen++
	generation := t.advanceGen
	t.schedule(delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.advanceGen != generation {
			return
		}
		t.nextCardLocked()
	})
}

// persistLocked saves the snapshot without blocking question progression.
// Failures are logged and swallowed; the in-memory state stays
// authoritative and the next successful save reconciles. Saves run one at
// a time, and a snapshot older than the last one stored is dropped.
func (t *Trainer) persistLocked() {
	if t.repo == nil {
		return
	}
	t.saveSeq++
	seq := t.saveSeq
	snapshot := t.snapshotLocked()
	userID := t.userID
	repo := t.repo
	logger := t.logger

	go func() {
		t.saveMu.Lock()
		defer t.saveMu.Unlock()
		if seq <= t.saveDone {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := repo.Save(ctx, userID, snapshot); err != nil {
			logger.Error("failed to save progress", "user", userID, "error", err)
			return
		}
		t.saveDone = seq
	}()
}

func (t *Trainer) snapshotLocked() Snapshot {
	hardWords := make(map[string]int, len(t.hardWords))
	for term, count := range t.hardWords {
		hardWords[term] = count
	}
	return Snapshot{
		Progress:      t.mastery.Snapshot(),
		HardWords:     hardWords,
		AnsweredCount: t.answeredCount,
		WrongCount:    t.wrongCount,
		Streak:        t.streak,
	}
}

package trainer

import "context"

// Snapshot is the durable slice of trainer state: mastery records, hard
// word counters and the global counters. Done-sets and the current
// question are session-local and never persisted.
type Snapshot struct {
	Progress      map[string]Record
	HardWords     map[string]int
	AnsweredCount int
	WrongCount    int
	Streak        int
}

//go:generate mockgen -source=repository.go -destination=../mocks/trainer/mock_repository.go -package=mock_trainer Repository

// Repository loads and saves a user's snapshot. Save uses merge semantics:
// it must not clobber fields it does not own. Implementations exist for
// MySQL (signed-in users) and a local SQLite file (guests).
type Repository interface {
	Load(ctx context.Context, userID string) (Snapshot, error)
	Save(ctx context.Context, userID string, snapshot Snapshot) error
}

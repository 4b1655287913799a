package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"vocadrill/internal/database"
	"vocadrill/internal/trainer"
)

// localSchema holds a single guest user's progress on the device.
const localSchema = `
CREATE TABLE IF NOT EXISTS mastery (
	term TEXT PRIMARY KEY,
	box INTEGER NOT NULL,
	seen INTEGER NOT NULL,
	last_updated TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS hard_words (
	term TEXT PRIMARY KEY,
	misses INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS counters (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	answered_count INTEGER NOT NULL,
	wrong_count INTEGER NOT NULL,
	streak INTEGER NOT NULL
);
`

// SQLiteRepository implements trainer.Repository on the local SQLite file
// used for guest/anonymous sessions. The userID argument is ignored: the
// device is the identity.
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository creates the repository, creating the schema when the
// database file is new.
func NewSQLiteRepository(db *sqlx.DB) (*SQLiteRepository, error) {
	if _, err := db.Exec(localSchema); err != nil {
		return nil, fmt.Errorf("create local schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Load reads the stored guest snapshot.
func (r *SQLiteRepository) Load(ctx context.Context, _ string) (trainer.Snapshot, error) {
	snapshot := trainer.Snapshot{
		Progress:  make(map[string]trainer.Record),
		HardWords: make(map[string]int),
	}

	var masteryRows []struct {
		Term string `db:"term"`
		trainer.Record
	}
	if err := r.db.SelectContext(ctx, &masteryRows,
		"SELECT term, box, seen, last_updated FROM mastery",
	); err != nil {
		return snapshot, fmt.Errorf("load mastery: %w", err)
	}
	for _, row := range masteryRows {
		snapshot.Progress[row.Term] = row.Record
	}

	var hardRows []struct {
		Term   string `db:"term"`
		Misses int    `db:"misses"`
	}
	if err := r.db.SelectContext(ctx, &hardRows,
		"SELECT term, misses FROM hard_words",
	); err != nil {
		return snapshot, fmt.Errorf("load hard words: %w", err)
	}
	for _, row := range hardRows {
		snapshot.HardWords[row.Term] = row.Misses
	}

	var counters struct {
		AnsweredCount int `db:"answered_count"`
		WrongCount    int `db:"wrong_count"`
		Streak        int `db:"streak"`
	}
	err := r.db.GetContext(ctx, &counters,
		"SELECT answered_count, wrong_count, streak FROM counters WHERE id = 1",
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return snapshot, fmt.Errorf("load counters: %w", err)
	}
	snapshot.AnsweredCount = counters.AnsweredCount
	snapshot.WrongCount = counters.WrongCount
	snapshot.Streak = counters.Streak

	return snapshot, nil
}

// Save replaces the guest snapshot in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, _ string, snapshot trainer.Snapshot) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for term, record := range snapshot.Progress {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR REPLACE INTO mastery (term, box, seen, last_updated) VALUES (?, ?, ?, ?)",
				term, record.Box, record.Seen, record.LastUpdated,
			); err != nil {
				return fmt.Errorf("upsert mastery %s: %w", term, err)
			}
		}

		for term, misses := range snapshot.HardWords {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR REPLACE INTO hard_words (term, misses) VALUES (?, ?)",
				term, misses,
			); err != nil {
				return fmt.Errorf("upsert hard word %s: %w", term, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO counters (id, answered_count, wrong_count, streak) VALUES (1, ?, ?, ?)",
			snapshot.AnsweredCount, snapshot.WrongCount, snapshot.Streak,
		); err != nil {
			return fmt.Errorf("upsert counters: %w", err)
		}

		return nil
	})
}

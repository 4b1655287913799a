// Package progress persists trainer snapshots: MySQL for signed-in users
// and a local SQLite file for guests.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"

	"vocadrill/internal/database"
	"vocadrill/internal/trainer"
)

// masteryRow mirrors one row of user_progress.
type masteryRow struct {
	UserID      string    `db:"user_id"`
	Term        string    `db:"term"`
	Box         int       `db:"box"`
	Seen        int       `db:"seen"`
	LastUpdated time.Time `db:"last_updated"`
}

// hardWordRow mirrors one row of user_hard_words.
type hardWordRow struct {
	UserID string `db:"user_id"`
	Term   string `db:"term"`
	Misses int    `db:"misses"`
}

// counterRow mirrors one row of user_counters.
type counterRow struct {
	UserID        string `db:"user_id"`
	AnsweredCount int    `db:"answered_count"`
	WrongCount    int    `db:"wrong_count"`
	Streak        int    `db:"streak"`
}

const saveAttempts = 3

// MySQLRepository implements trainer.Repository using MySQL.
type MySQLRepository struct {
	db *sqlx.DB
}

// NewMySQLRepository creates a new MySQLRepository.
func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Load reads a user's full snapshot. A user without stored rows gets an
// empty snapshot, not an error.
func (r *MySQLRepository) Load(ctx context.Context, userID string) (trainer.Snapshot, error) {
	snapshot := trainer.Snapshot{
		Progress:  make(map[string]trainer.Record),
		HardWords: make(map[string]int),
	}

	var masteryRows []masteryRow
	if err := r.db.SelectContext(ctx, &masteryRows,
		"SELECT user_id, term, box, seen, last_updated FROM user_progress WHERE user_id = ?", userID,
	); err != nil {
		return snapshot, fmt.Errorf("load user progress: %w", err)
	}
	for _, row := range masteryRows {
		snapshot.Progress[row.Term] = trainer.Record{
			Box:         row.Box,
			Seen:        row.Seen,
			LastUpdated: row.LastUpdated,
		}
	}

	var hardRows []hardWordRow
	if err := r.db.SelectContext(ctx, &hardRows,
		"SELECT user_id, term, misses FROM user_hard_words WHERE user_id = ?", userID,
	); err != nil {
		return snapshot, fmt.Errorf("load hard words: %w", err)
	}
	for _, row := range hardRows {
		snapshot.HardWords[row.Term] = row.Misses
	}

	var counters counterRow
	err := r.db.GetContext(ctx, &counters,
		"SELECT user_id, answered_count, wrong_count, streak FROM user_counters WHERE user_id = ?", userID,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return snapshot, fmt.Errorf("load counters: %w", err)
	}
	snapshot.AnsweredCount = counters.AnsweredCount
	snapshot.WrongCount = counters.WrongCount
	snapshot.Streak = counters.Streak

	return snapshot, nil
}

// Save upserts the snapshot for a user. Writes run in one transaction and
// only touch the rows this snapshot owns, so unrelated user data is never
// clobbered. Transient failures are retried a few times before giving up.
func (r *MySQLRepository) Save(ctx context.Context, userID string, snapshot trainer.Snapshot) error {
	return retry.Do(
		func() error {
			return r.saveOnce(ctx, userID, snapshot)
		},
		retry.Attempts(saveAttempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}

func (r *MySQLRepository) saveOnce(ctx context.Context, userID string, snapshot trainer.Snapshot) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if len(snapshot.Progress) > 0 {
			columns := []string{"user_id", "term", "box", "seen", "last_updated"}
			query := database.BuildMultiRowInsert("user_progress", columns, len(snapshot.Progress)) +
				" ON DUPLICATE KEY UPDATE box = VALUES(box), seen = VALUES(seen), last_updated = VALUES(last_updated)"

			var args []interface{}
			for term, record := range snapshot.Progress {
				args = append(args, userID, term, record.Box, record.Seen, record.LastUpdated)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert user progress: %w", err)
			}
		}

		if len(snapshot.HardWords) > 0 {
			columns := []string{"user_id", "term", "misses"}
			query := database.BuildMultiRowInsert("user_hard_words", columns, len(snapshot.HardWords)) +
				" ON DUPLICATE KEY UPDATE misses = VALUES(misses)"

			var args []interface{}
			for term, misses := range snapshot.HardWords {
				args = append(args, userID, term, misses)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert hard words: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_counters (user_id, answered_count, wrong_count, streak) VALUES (?, ?, ?, ?)"+
				" ON DUPLICATE KEY UPDATE answered_count = VALUES(answered_count), wrong_count = VALUES(wrong_count), streak = VALUES(streak)",
			userID, snapshot.AnsweredCount, snapshot.WrongCount, snapshot.Streak,
		); err != nil {
			return fmt.Errorf("upsert counters: %w", err)
		}

		return nil
	})
}

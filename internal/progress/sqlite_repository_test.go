package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocadrill/internal/database"
	"vocadrill/internal/trainer"
)

func newTestSQLiteRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.OpenLocal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	repo, err := NewSQLiteRepository(db)
	require.NoError(t, err)
	return repo
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	snapshot := trainer.Snapshot{
		Progress: map[string]trainer.Record{
			"gato":  {Box: 2, Seen: 5, LastUpdated: now},
			"perro": {Box: 0, Seen: 3, LastUpdated: now},
		},
		HardWords:     map[string]int{"perro": 2},
		AnsweredCount: 9,
		WrongCount:    4,
		Streak:        1,
	}

	require.NoError(t, repo.Save(ctx, "ignored", snapshot))

	loaded, err := repo.Load(ctx, "ignored")
	require.NoError(t, err)

	assert.Equal(t, snapshot.HardWords, loaded.HardWords)
	assert.Equal(t, snapshot.AnsweredCount, loaded.AnsweredCount)
	assert.Equal(t, snapshot.WrongCount, loaded.WrongCount)
	assert.Equal(t, snapshot.Streak, loaded.Streak)

	require.Len(t, loaded.Progress, 2)
	assert.Equal(t, 2, loaded.Progress["gato"].Box)
	assert.Equal(t, 5, loaded.Progress["gato"].Seen)
	assert.True(t, loaded.Progress["gato"].LastUpdated.Equal(now))
}

func TestSQLiteRepository_SaveOverwrites(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	first := trainer.Snapshot{
		Progress:      map[string]trainer.Record{"gato": {Box: 1, Seen: 1, LastUpdated: now}},
		HardWords:     map[string]int{},
		AnsweredCount: 1,
	}
	require.NoError(t, repo.Save(ctx, "", first))

	second := trainer.Snapshot{
		Progress:      map[string]trainer.Record{"gato": {Box: 2, Seen: 2, LastUpdated: now.Add(time.Hour)}},
		HardWords:     map[string]int{"gato": 1},
		AnsweredCount: 2,
		WrongCount:    1,
		Streak:        2,
	}
	require.NoError(t, repo.Save(ctx, "", second))

	loaded, err := repo.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Progress["gato"].Box)
	assert.Equal(t, 2, loaded.Progress["gato"].Seen)
	assert.Equal(t, 1, loaded.HardWords["gato"])
	assert.Equal(t, 2, loaded.AnsweredCount)
	assert.Equal(t, 2, loaded.Streak)
}

func TestSQLiteRepository_LoadEmptyDatabase(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	loaded, err := repo.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, loaded.Progress)
	assert.Empty(t, loaded.HardWords)
	assert.Equal(t, 0, loaded.AnsweredCount)
	assert.Equal(t, 0, loaded.Streak)
}

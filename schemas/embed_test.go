package schemas

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	entries, err := fs.Glob(Migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		content, err := fs.ReadFile(Migrations, entry)
		require.NoError(t, err)
		assert.NotEmpty(t, content, "migration %s is empty", entry)
		assert.Contains(t, string(content), "CREATE TABLE", "migration %s has no DDL", entry)
	}
}

func TestMigrations_ProgressTables(t *testing.T) {
	content, err := fs.ReadFile(Migrations, "migrations/001_create_progress_tables.sql")
	require.NoError(t, err)

	schema := string(content)
	for _, table := range []string{"user_progress", "user_hard_words", "user_counters"} {
		assert.True(t, strings.Contains(schema, table), "missing table %s", table)
	}
}

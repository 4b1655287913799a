// Package testutil provides shared test helpers for creating config files
// and catalog fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vocadrill/internal/catalog"
)

// SetupTestConfig creates a minimal config file and the directories it
// references. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	catalogDir := filepath.Join(tmpDir, "catalog")
	dataDir := filepath.Join(tmpDir, "data")
	for _, dir := range []string{catalogDir, dataDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	configContent := fmt.Sprintf(`catalog:
  directory: %s
local:
  data_directory: %s
trainer:
  language: en
`, catalogDir, dataDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteCatalogFile writes items to
// <dir>/languages/<language>/categories/<category>/<level>.yml so the
// loader derives the partition from the path.
func WriteCatalogFile(t *testing.T, dir, language, category, level string, items []catalog.Item) {
	t.Helper()

	fileDir := filepath.Join(dir, "languages", language, "categories", category)
	require.NoError(t, os.MkdirAll(fileDir, 0755))

	data, err := yaml.Marshal(items)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(fileDir, level+".yml"), data, 0644))
}

// Items builds simple term/translation pairs for pool tests: pairs is a
// sequence of term, translation, term, translation, ...
func Items(pairs ...string) []catalog.Item {
	items := make([]catalog.Item, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, catalog.Item{
			Term:        pairs[i],
			Translation: pairs[i+1],
		})
	}
	return items
}

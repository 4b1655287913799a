package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load walks the catalog directory and decodes every YAML file laid out as
// languages/<language>/categories/<category>/<level>.yml. The path
// segments provide defaults for entries that do not set language, category
// or level themselves.
func Load(dir string) (*Catalog, error) {
	var items []Item

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYamlFile(path) {
			return nil
		}

		fileItems, err := readItemsFile(path)
		if err != nil {
			return fmt.Errorf("readItemsFile(%s) > %w", path, err)
		}

		language, category, level := partitionFromPath(dir, path)
		for _, item := range fileItems {
			if item.Language == "" {
				item.Language = language
			}
			if item.Category == "" {
				item.Category = category
			}
			if item.Level == "" {
				item.Level = level
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", dir, err)
	}

	return New(items), nil
}

func isYamlFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yml" || ext == ".yaml"
}

func readItemsFile(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var items []Item
	if err := yaml.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode()> %w", err)
	}
	return items, nil
}

// partitionFromPath derives (language, category, level) from a path like
// <dir>/languages/en/categories/animals/A1.yml. Missing segments fall back
// to "en" / DefaultCategory / empty level.
func partitionFromPath(dir, path string) (language, category, level string) {
	language = "en"
	category = DefaultCategory

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = path
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")

	for i, part := range parts {
		switch part {
		case "languages":
			if i+1 < len(parts) {
				language = parts[i+1]
			}
		case "categories":
			if i+1 < len(parts) {
				category = parts[i+1]
			}
		}
	}

	base := filepath.Base(path)
	level = strings.TrimSuffix(base, filepath.Ext(base))
	for _, known := range Levels {
		if level == known {
			return language, category, level
		}
	}
	return language, category, ""
}

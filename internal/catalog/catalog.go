// Package catalog loads the vocabulary catalog from YAML files.
package catalog

import (
	"sort"
	"strings"
)

// Levels enumerates the supported CEFR levels, easiest first.
var Levels = []string{"A1", "A2", "B1", "B2", "C1"}

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "all"

// DefaultCategory is assigned to entries without an explicit category.
const DefaultCategory = "general"

// Item is a single vocabulary entry. Items are immutable once loaded.
// Translation may encode several accepted answers separated by ";", "|"
// or "/". Definition is shown as a hint after a first wrong attempt.
type Item struct {
	Term        string `yaml:"term"`
	Translation string `yaml:"translation"`
	Definition  string `yaml:"definition,omitempty"`
	Level       string `yaml:"level,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// Catalog is the full, immutable set of vocabulary entries for a session.
// Terms are assumed unique within a language; entries sharing a term share
// one mastery record, which mirrors how progress is keyed.
type Catalog struct {
	items []Item
}

// New builds a catalog from already-loaded items, dropping entries without
// a term and filling default category.
func New(items []Item) *Catalog {
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Term) == "" {
			continue
		}
		if strings.TrimSpace(item.Category) == "" {
			item.Category = DefaultCategory
		} else {
			item.Category = strings.TrimSpace(item.Category)
		}
		kept = append(kept, item)
	}
	return &Catalog{items: kept}
}

// Items returns all entries.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Categories returns the sorted category names present for a language,
// prefixed with the AllCategories sentinel.
func (c *Catalog) Categories(language string) []string {
	seen := make(map[string]struct{})
	for _, item := range c.items {
		if item.Language != language {
			continue
		}
		seen[item.Category] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{AllCategories}, names...)
}

// Filter returns the entries matching language and level, and category
// unless category is the AllCategories sentinel.
func (c *Catalog) Filter(language, level, category string) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Language != language {
			continue
		}
		if level != "" && item.Level != level {
			continue
		}
		if category != AllCategories && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ByLevel returns all entries of a language at the given level,
// regardless of category.
func (c *Catalog) ByLevel(language, level string) []Item {
	return c.Filter(language, level, AllCategories)
}

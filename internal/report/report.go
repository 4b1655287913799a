// Package report renders progress reports as markdown and optionally PDF.
package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"vocadrill/internal/stats"
	"vocadrill/internal/trainer"
)

// ProgressReport is everything a rendered report contains.
type ProgressReport struct {
	Language    string
	GeneratedAt time.Time
	Levels      []stats.LevelStats
	Snapshot    trainer.Snapshot
}

// RenderMarkdown produces the report document.
func RenderMarkdown(r ProgressReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Vocabulary progress (%s)\n\n", r.Language)
	fmt.Fprintf(&b, "Generated at %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Levels\n\n")
	b.WriteString("| Level | Mastered | Total | % |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, level := range r.Levels {
		fmt.Fprintf(&b, "| %s | %d | %d | %d%% |\n", level.Level, level.Mastered, level.Total, level.Percent)
	}

	b.WriteString("\n## Counters\n\n")
	fmt.Fprintf(&b, "- Answered: **%d**\n", r.Snapshot.AnsweredCount)
	fmt.Fprintf(&b, "- Misses: **%d**\n", r.Snapshot.WrongCount)
	fmt.Fprintf(&b, "- Current streak: **%d**\n", r.Snapshot.Streak)

	hardWords := sortedHardWords(r.Snapshot.HardWords)
	if len(hardWords) > 0 {
		b.WriteString("\n## Hard words\n\n")
		b.WriteString("| Term | Misses | Box |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, hard := range hardWords {
			record := r.Snapshot.Progress[hard.term]
			fmt.Fprintf(&b, "| %s | %d | %d |\n", hard.term, hard.misses, record.Box)
		}
	}

	return b.String()
}

// WriteMarkdown renders the report to a .md file.
func WriteMarkdown(r ProgressReport, path string) error {
	if !strings.HasSuffix(path, ".md") {
		return fmt.Errorf("output file must have .md extension: %s", path)
	}
	if err := os.WriteFile(path, []byte(RenderMarkdown(r)), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

type hardWord struct {
	term   string
	misses int
}

// sortedHardWords orders hard words by miss count (desc), then term.
func sortedHardWords(counts map[string]int) []hardWord {
	words := make([]hardWord, 0, len(counts))
	for term, misses := range counts {
		if misses > 0 {
			words = append(words, hardWord{term: term, misses: misses})
		}
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].misses != words[j].misses {
			return words[i].misses > words[j].misses
		}
		return words[i].term < words[j].term
	})
	return words
}

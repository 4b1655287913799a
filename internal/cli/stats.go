package cli

import (
	"fmt"
	"io"
	"sort"

	"vocadrill/internal/stats"
)

// PrintLevelStats writes the per-level progress table.
func PrintLevelStats(w io.Writer, language string, levels []stats.LevelStats) {
	fmt.Fprintf(w, "Progress for language %q\n", language)
	fmt.Fprintf(w, "%-6s %10s %8s %5s\n", "Level", "Mastered", "Total", "%")
	for _, level := range levels {
		fmt.Fprintf(w, "%-6s %10d %8d %4d%%\n", level.Level, level.Mastered, level.Total, level.Percent)
	}
}

// PrintHardWords writes the hard-word counters, highest miss counts first.
func PrintHardWords(w io.Writer, hardWords map[string]int) {
	if len(hardWords) == 0 {
		fmt.Fprintln(w, "No hard words recorded.")
		return
	}

	type hardWord struct {
		term   string
		misses int
	}
	words := make([]hardWord, 0, len(hardWords))
	for term, misses := range hardWords {
		words = append(words, hardWord{term: term, misses: misses})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].misses != words[j].misses {
			return words[i].misses > words[j].misses
		}
		return words[i].term < words[j].term
	})

	fmt.Fprintln(w, "Hard words:")
	for _, word := range words {
		fmt.Fprintf(w, "  %-20s %d misses\n", word.term, word.misses)
	}
}

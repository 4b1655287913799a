// Package stats derives per-level progress figures from the catalog and
// the mastery records.
package stats

import (
	"math"

	"vocadrill/internal/catalog"
	"vocadrill/internal/trainer"
)

// LevelStats summarizes one CEFR level for a language. A term counts as
// mastered once its box is above 0.
type LevelStats struct {
	Level    string
	Total    int
	Mastered int
	Percent  int
}

// MasteryReader is the slice of trainer state the calculations need.
type MasteryReader interface {
	MasteryRecord(term string) trainer.Record
}

// CalculateLevelStats returns one entry per known level, in level order.
func CalculateLevelStats(c *catalog.Catalog, mastery MasteryReader, language string) []LevelStats {
	result := make([]LevelStats, 0, len(catalog.Levels))
	for _, level := range catalog.Levels {
		words := c.ByLevel(language, level)

		mastered := 0
		for _, word := range words {
			if mastery.MasteryRecord(word.Term).Box > 0 {
				mastered++
			}
		}

		percent := 0
		if len(words) > 0 {
			percent = int(math.Round(float64(mastered) / float64(len(words)) * 100))
		}
		result = append(result, LevelStats{
			Level:    level,
			Total:    len(words),
			Mastered: mastered,
			Percent:  percent,
		})
	}
	return result
}

// MasteredCount returns how many terms of a level have left box 0.
func MasteredCount(c *catalog.Catalog, mastery MasteryReader, language, level string) int {
	count := 0
	for _, word := range c.ByLevel(language, level) {
		if mastery.MasteryRecord(word.Term).Box > 0 {
			count++
		}
	}
	return count
}

// FlashSummary condenses a flashcard session into display figures.
type FlashSummary struct {
	Total     int
	Answered  int
	Remaining int
	Accuracy  float64
}

// SummarizeFlashSession computes the derived flashcard-session figures
// from the raw session stats and the session item count.
func SummarizeFlashSession(sessionSize int, s trainer.FlashStats) FlashSummary {
	answered := s.Correct + s.Wrong
	remaining := sessionSize - len(s.UniqueCorrect)
	if remaining < 0 {
		remaining = 0
	}
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(s.Correct) / float64(answered) * 100
	}
	return FlashSummary{
		Total:     sessionSize,
		Answered:  answered,
		Remaining: remaining,
		Accuracy:  accuracy,
	}
}

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocadrill/internal/catalog"
	"vocadrill/internal/motivation"
	"vocadrill/internal/testutil"
	"vocadrill/internal/trainer"
)

func TestNewQuizCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	for _, mode := range []string{"write", "flashcard", "hard"} {
		t.Run(mode, func(t *testing.T) {
			cmd := newQuizCommand()
			cmd.SetArgs([]string{mode})
			err := cmd.Execute()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "configuration")
		})
	}
}

// The session trainer must not arm the internal auto-advance timer: the
// CLIs sleep and call Next themselves, and a second advance from the timer
// skips a card and can re-show the one that was just answered.
func TestNewSessionTrainer_AdvancesOnlyExplicitly(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{Term: "perro", Translation: "dog", Language: "es", Category: "animals", Level: "A1"},
		{Term: "gato", Translation: "cat", Language: "es", Category: "animals", Level: "A1"},
	})
	tr := newSessionTrainer(cat, "es", nil, "", motivation.DefaultMessages())
	tr.SetLevel("A1")
	tr.SetMode(trainer.ModeFlashcard)

	current := tr.Current()
	require.NotNil(t, current)
	answered := current.Term

	wrongIndex := -1
	for i, option := range tr.Options() {
		if !option.Correct {
			wrongIndex = i
			break
		}
	}
	require.NotEqual(t, -1, wrongIndex)
	assert.Equal(t, trainer.FlashWrong, tr.AnswerChoice(wrongIndex))

	// Wait well past the flashcard delay so an armed timer would have fired,
	// then advance the way the CLI does.
	time.Sleep(time.Second)
	tr.Next()

	next := tr.Current()
	require.NotNil(t, next)
	assert.NotEqual(t, answered, next.Term)
}

func TestNewQuizCommand_RunE_EmptyCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)

	cmd := newQuizCommand()
	cmd.SetArgs([]string{"write"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no vocabulary entries")
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocadrill/internal/catalog"
	"vocadrill/internal/trainer"
)

func newCLITrainer(items ...catalog.Item) *trainer.Trainer {
	return trainer.New(
		catalog.New(items),
		"es",
		trainer.WithRand(rand.New(rand.NewSource(1))),
		trainer.WithScheduler(func(time.Duration, func()) {}),
	)
}

func singleItem() catalog.Item {
	return catalog.Item{
		Term: "gato", Translation: "cat", Definition: "feline pet",
		Level: "A1", Category: "animals", Language: "es",
	}
}

// setTestIO rewires the CLI onto scripted input and a capture buffer.
func setTestIO(cli *InteractiveQuizCLI, input string) *bytes.Buffer {
	out := &bytes.Buffer{}
	cli.stdinReader = bufio.NewReader(strings.NewReader(input))
	cli.stdoutWriter = out
	return out
}

func TestWriteQuizCLI_Session_Correct(t *testing.T) {
	quiz := NewWriteQuizCLI(newCLITrainer(singleItem()), trainer.ModeWrite)
	quiz.displayDelay = 0
	out := setTestIO(quiz.InteractiveQuizCLI, "cat\n")

	require.NoError(t, quiz.Session(context.Background()))
	assert.Contains(t, out.String(), "gato")
	assert.Contains(t, out.String(), "Correct! Streak: 1")

	// The only card is done; the next round ends the session.
	assert.ErrorIs(t, quiz.Session(context.Background()), errEnd)
	assert.Contains(t, out.String(), "No more cards to practice!")
}

func TestWriteQuizCLI_Session_TwoAttempts(t *testing.T) {
	quiz := NewWriteQuizCLI(newCLITrainer(singleItem()), trainer.ModeWrite)
	quiz.displayDelay = 0
	out := setTestIO(quiz.InteractiveQuizCLI, "zzz\nzzz\n\n")

	require.NoError(t, quiz.Session(context.Background()))
	assert.Contains(t, out.String(), "Not quite. One more try.")
	assert.Contains(t, out.String(), "Hint: feline pet")

	require.NoError(t, quiz.Session(context.Background()))
	assert.Contains(t, out.String(), "The answer was: ")
	assert.Contains(t, out.String(), "cat")
	assert.Contains(t, out.String(), "Press Enter to continue...")

	// The failed card is not marked done and comes back.
	require.NotNil(t, quiz.trainer.Current())
	assert.Equal(t, 1, quiz.trainer.HardWords()["gato"])
}

func TestWriteQuizCLI_Session_Quit(t *testing.T) {
	quiz := NewWriteQuizCLI(newCLITrainer(singleItem()), trainer.ModeWrite)
	out := setTestIO(quiz.InteractiveQuizCLI, "q\n")

	assert.ErrorIs(t, quiz.Session(context.Background()), errEnd)
	assert.Contains(t, out.String(), "Practice session ended.")
}

func TestWriteQuizCLI_Session_HardModeEmpty(t *testing.T) {
	quiz := NewWriteQuizCLI(newCLITrainer(singleItem()), trainer.ModeHard)
	out := setTestIO(quiz.InteractiveQuizCLI, "")

	assert.ErrorIs(t, quiz.Session(context.Background()), errEnd)
	assert.Contains(t, out.String(), "No hard words left for this session.")
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "q", expected: true},
		{input: "quit", expected: true},
		{input: "exit", expected: true},
		{input: "Q", expected: false},
		{input: "gato", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isQuit(tt.input))
		})
	}
}

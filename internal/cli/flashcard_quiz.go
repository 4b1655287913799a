package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vocadrill/internal/stats"
	"vocadrill/internal/trainer"
)

// FlashcardQuizCLI runs the multiple-choice session with repeat-failed and
// repeat-all at pool exhaustion.
type FlashcardQuizCLI struct {
	*InteractiveQuizCLI
	displayDelay time.Duration
}

// NewFlashcardQuizCLI creates the flashcard quiz. The trainer must already
// have its progress loaded.
func NewFlashcardQuizCLI(t *trainer.Trainer) *FlashcardQuizCLI {
	cli := &FlashcardQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(t),
		displayDelay:       700 * time.Millisecond,
	}
	t.SetMode(trainer.ModeFlashcard)
	return cli
}

func (r *FlashcardQuizCLI) Session(ctx context.Context) error {
	current := r.trainer.Current()
	if current == nil {
		return r.sessionComplete()
	}

	_, _ = r.bold.Fprintf(r.stdoutWriter, "\n%s\n", current.Term)
	options := r.trainer.Options()
	for i, option := range options {
		fmt.Fprintf(r.stdoutWriter, "  %d) %s\n", i+1, option.Text)
	}

	input, err := r.readLine("Choice: ")
	if err != nil {
		return err
	}
	if isQuit(input) {
		fmt.Fprintln(r.stdoutWriter, "Practice session ended.")
		return errEnd
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(options) {
		fmt.Fprintf(r.stdoutWriter, "Enter a number between 1 and %d\n", len(options))
		return nil
	}

	switch r.trainer.AnswerChoice(choice - 1) {
	case trainer.FlashCorrect:
		_, _ = r.green.Fprintln(r.stdoutWriter, "Correct!")
	case trainer.FlashWrong:
		_, _ = r.red.Fprintf(r.stdoutWriter, "Wrong. The answer was: ")
		_, _ = r.bold.Fprintln(r.stdoutWriter, current.Translation)
	}

	time.Sleep(r.displayDelay)
	r.trainer.Next()
	return nil
}

// sessionComplete prints the session summary and offers a retry.
func (r *FlashcardQuizCLI) sessionComplete() error {
	session := r.trainer.FlashSession()
	summary := stats.SummarizeFlashSession(r.trainer.SessionSize(), session)

	fmt.Fprintln(r.stdoutWriter, "\nFlashcard session complete!")
	fmt.Fprintf(r.stdoutWriter, "Answered %d (%d correct, %d wrong), accuracy %.0f%%\n",
		summary.Answered, session.Correct, session.Wrong, summary.Accuracy)

	if len(session.FailedTerms) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No failed cards. Great job!")
		return errEnd
	}

	input, err := r.readLine("Repeat [f]ailed only, [a]ll, or [q]uit? ")
	if err != nil {
		return err
	}
	switch input {
	case "f":
		r.trainer.RepeatFailedFlash()
		return nil
	case "a":
		r.trainer.RepeatAllFlash()
		return nil
	default:
		return errEnd
	}
}

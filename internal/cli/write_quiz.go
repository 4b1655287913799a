package cli

import (
	"context"
	"fmt"
	"time"

	"vocadrill/internal/trainer"
)

// WriteQuizCLI runs the two-attempt free-text session, in write mode or
// hard-words mode.
type WriteQuizCLI struct {
	*InteractiveQuizCLI
	mode         trainer.Mode
	displayDelay time.Duration
}

// NewWriteQuizCLI creates the free-text quiz for the given mode. The
// trainer must already have its progress loaded.
func NewWriteQuizCLI(t *trainer.Trainer, mode trainer.Mode) *WriteQuizCLI {
	cli := &WriteQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(t),
		mode:               mode,
		displayDelay:       1300 * time.Millisecond,
	}
	t.SetMode(mode)
	return cli
}

func (r *WriteQuizCLI) Session(ctx context.Context) error {
	current := r.trainer.Current()
	if current == nil {
		if r.mode == trainer.ModeHard {
			fmt.Fprintln(r.stdoutWriter, "No hard words left for this session. Well done!")
		} else {
			fmt.Fprintln(r.stdoutWriter, "No more cards to practice!")
		}
		return errEnd
	}

	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s", current.Term)
	answer, err := r.readLine(": ")
	if err != nil {
		return err
	}
	if isQuit(answer) {
		fmt.Fprintln(r.stdoutWriter, "Practice session ended.")
		return errEnd
	}

	switch r.trainer.Check(answer) {
	case trainer.FeedbackOK:
		_, _ = r.green.Fprintf(r.stdoutWriter, "Correct! Streak: %d\n", r.trainer.Streak())
		// Display pause mirrors the auto-advance delay; the CLI advances
		// explicitly instead of relying on the timer.
		time.Sleep(r.displayDelay)
		r.trainer.Next()

	case trainer.FeedbackFirstWrong:
		_, _ = r.red.Fprintln(r.stdoutWriter, "Not quite. One more try.")
		if current.Definition != "" {
			_, _ = r.italic.Fprintf(r.stdoutWriter, "Hint: %s\n", current.Definition)
		}
		r.printMotivation()

	case trainer.FeedbackSecondWrong:
		_, _ = r.red.Fprintf(r.stdoutWriter, "The answer was: ")
		_, _ = r.bold.Fprintln(r.stdoutWriter, current.Translation)
		r.printMotivation()
		if _, err := r.readLine("Press Enter to continue..."); err != nil {
			return err
		}
		r.trainer.RevealAndNext()
	}

	return nil
}

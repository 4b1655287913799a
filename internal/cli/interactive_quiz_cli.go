// Package cli implements the interactive drilling sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"vocadrill/internal/trainer"
)

// InteractiveQuizCLI contains shared logic for interactive quiz CLIs.
type InteractiveQuizCLI struct {
	trainer      *trainer.Trainer
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

// newInteractiveQuizCLI creates the base CLI with shared initialization.
func newInteractiveQuizCLI(t *trainer.Trainer) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		trainer:      t,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Session is one question/answer round of an interactive quiz.
type Session interface {
	Session(ctx context.Context) error
}

var errEnd = errors.New("end")

// Run executes sessions until the user quits, the pool is exhausted or an
// interrupt arrives.
func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine reads one trimmed input line after printing the prompt.
func (cli *InteractiveQuizCLI) readLine(prompt string) (string, error) {
	fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// isQuit reports whether an input line ends the session.
func isQuit(line string) bool {
	return line == "quit" || line == "exit" || line == "q"
}

// printMotivation surfaces the motivational message when one is active.
func (cli *InteractiveQuizCLI) printMotivation() {
	if message := cli.trainer.Motivation(); message != "" {
		_, _ = cli.italic.Fprintln(cli.stdoutWriter, message)
	}
}

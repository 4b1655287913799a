// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"
)

// shutdownTimeout bounds how long shutdown hooks may run after an
// interrupt, so a stuck save cannot keep the process alive.
const shutdownTimeout = 15 * time.Second

// Hook is a function called during graceful shutdown.
type Hook func(ctx context.Context) error

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu    sync.Mutex
	hooks []Hook
}

// New creates a new App.
func New() *App {
	return &App{}
}

// AddShutdownHook registers a hook. Hooks run in reverse registration
// order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(hook Hook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook)
}

// Run sets up signal handling and executes the run function. On OS
// interrupt it calls registered shutdown hooks in LIFO order; when run
// finishes normally the hooks also run, so final saves happen on both
// paths. A run error takes precedence over hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		if err != nil {
			return err
		}
		return a.shutdown()
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()
	var errs []error
	for i := len(a.hooks) - 1; i >= 0; i-- {
		if err := a.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.hooks = nil
	return errors.Join(errs...)
}

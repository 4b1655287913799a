package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"vocadrill/internal/bootstrap"
	"vocadrill/internal/catalog"
	"vocadrill/internal/cli"
	"vocadrill/internal/config"
	"vocadrill/internal/database"
	"vocadrill/internal/motivation"
	"vocadrill/internal/progress"
	"vocadrill/internal/trainer"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loader.Load() > %w", err)
	}
	return cfg, nil
}

func newQuizCommand() *cobra.Command {
	var userID string
	var language string
	var level string
	var category string

	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Interactive drilling sessions",
	}
	quizCommand.PersistentFlags().StringVar(&userID, "user", "", "user ID for remote progress (empty = guest, local storage)")
	quizCommand.PersistentFlags().StringVar(&language, "language", "", "catalog language (overrides config)")
	quizCommand.PersistentFlags().StringVar(&level, "level", "A1", "CEFR level to drill")
	quizCommand.PersistentFlags().StringVar(&category, "category", catalog.AllCategories, "category to drill")

	runMode := func(mode trainer.Mode) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd.Context(), mode, userID, language, level, category)
		}
	}

	quizCommand.AddCommand(
		&cobra.Command{
			Use:   "write",
			Short: "Two-attempt free-text practice",
			RunE:  runMode(trainer.ModeWrite),
		},
		&cobra.Command{
			Use:   "flashcard",
			Short: "Multiple-choice flashcards",
			RunE:  runMode(trainer.ModeFlashcard),
		},
		&cobra.Command{
			Use:   "hard",
			Short: "Drill only the words you keep missing",
			RunE:  runMode(trainer.ModeHard),
		},
	)
	return quizCommand
}

func runQuiz(ctx context.Context, mode trainer.Mode, userID, language, level, category string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if language == "" {
		language = cfg.Trainer.Language
	}

	cat, err := catalog.Load(cfg.Catalog.Directory)
	if err != nil {
		return fmt.Errorf("catalog.Load(%s) > %w", cfg.Catalog.Directory, err)
	}
	if cat.Len() == 0 {
		return fmt.Errorf("catalog %s contains no vocabulary entries", cfg.Catalog.Directory)
	}

	app := bootstrap.New()

	repo, db, err := openRepository(cfg, userID)
	if err != nil {
		return err
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	messages := fetchMessages(ctx, cfg)

	t := newSessionTrainer(cat, language, repo, userID, messages)
	if err := t.LoadProgress(ctx); err != nil {
		return fmt.Errorf("t.LoadProgress() > %w", err)
	}
	t.SetLevel(level)
	t.SetCategory(category)

	// Flush a final save so fire-and-forget writes cannot be lost on exit.
	app.AddShutdownHook(func(ctx context.Context) error {
		return repo.Save(ctx, userID, t.Snapshot())
	})

	return app.Run(ctx, func(ctx context.Context) error {
		var session cli.Session
		var base *cli.InteractiveQuizCLI
		switch mode {
		case trainer.ModeFlashcard:
			flashCLI := cli.NewFlashcardQuizCLI(t)
			session, base = flashCLI, flashCLI.InteractiveQuizCLI
		default:
			writeCLI := cli.NewWriteQuizCLI(t, mode)
			session, base = writeCLI, writeCLI.InteractiveQuizCLI
		}
		return base.Run(ctx, session)
	})
}

// newSessionTrainer builds the trainer behind the interactive commands. The
// quiz CLIs pace cards themselves and call Next explicitly, so the internal
// auto-advance timer is disabled; leaving it armed would advance twice and
// could re-show the card that was just answered.
func newSessionTrainer(cat *catalog.Catalog, language string, repo trainer.Repository, userID string, messages []string) *trainer.Trainer {
	return trainer.New(cat, language,
		trainer.WithRepository(repo, userID),
		trainer.WithMessages(messages),
		trainer.WithScheduler(func(time.Duration, func()) {}),
	)
}

// openRepository picks remote MySQL storage for identified users and the
// local SQLite file for guests.
func openRepository(cfg *config.Config, userID string) (trainer.Repository, *sqlx.DB, error) {
	if userID == "" {
		db, err := database.OpenLocal(cfg.Local.DataDirectory)
		if err != nil {
			return nil, nil, fmt.Errorf("database.OpenLocal() > %w", err)
		}
		repo, err := progress.NewSQLiteRepository(db)
		if err != nil {
			return nil, nil, fmt.Errorf("progress.NewSQLiteRepository() > %w", err)
		}
		return repo, db, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	return progress.NewMySQLRepository(db), db, nil
}

// fetchMessages loads remote motivational messages when configured. Any
// failure falls back to the built-in list.
func fetchMessages(ctx context.Context, cfg *config.Config) []string {
	if cfg.Motivation.URL == "" {
		return motivation.DefaultMessages()
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	messages, err := motivation.NewHTTPProvider(cfg.Motivation.URL).Messages(fetchCtx)
	if err != nil {
		slog.Warn("falling back to built-in motivation messages", "error", err)
	}
	return messages
}

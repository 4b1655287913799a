package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vocadrill/internal/catalog"
	"vocadrill/internal/cli"
	"vocadrill/internal/report"
	"vocadrill/internal/stats"
	"vocadrill/internal/trainer"
)

func newStatsCommand() *cobra.Command {
	var userID string
	var language string

	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Show per-level progress and hard words",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cat, cleanup, err := loadTrainerForReporting(cmd, userID, &language)
			if err != nil {
				return err
			}
			defer cleanup()

			cli.PrintLevelStats(os.Stdout, language, stats.CalculateLevelStats(cat, t, language))
			fmt.Println()
			cli.PrintHardWords(os.Stdout, t.HardWords())
			return nil
		},
	}
	statsCommand.Flags().StringVar(&userID, "user", "", "user ID for remote progress (empty = guest)")
	statsCommand.Flags().StringVar(&language, "language", "", "catalog language (overrides config)")
	return statsCommand
}

func newReportCommand() *cobra.Command {
	var userID string
	var language string
	var output string
	var toPDF bool

	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "Write a progress report as markdown, optionally PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, cat, cleanup, err := loadTrainerForReporting(cmd, userID, &language)
			if err != nil {
				return err
			}
			defer cleanup()

			progressReport := report.ProgressReport{
				Language:    language,
				GeneratedAt: time.Now(),
				Levels:      stats.CalculateLevelStats(cat, t, language),
				Snapshot:    t.Snapshot(),
			}
			if err := report.WriteMarkdown(progressReport, output); err != nil {
				return fmt.Errorf("report.WriteMarkdown() > %w", err)
			}
			fmt.Printf("Wrote %s\n", output)

			if toPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(output)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}
			return nil
		},
	}
	reportCommand.Flags().StringVar(&userID, "user", "", "user ID for remote progress (empty = guest)")
	reportCommand.Flags().StringVar(&language, "language", "", "catalog language (overrides config)")
	reportCommand.Flags().StringVar(&output, "output", "progress.md", "markdown output path")
	reportCommand.Flags().BoolVar(&toPDF, "pdf", false, "also convert the report to PDF")
	return reportCommand
}

// loadTrainerForReporting builds a trainer with loaded progress but no
// interactive session, for stats and report commands.
func loadTrainerForReporting(cmd *cobra.Command, userID string, language *string) (*trainer.Trainer, *catalog.Catalog, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if *language == "" {
		*language = cfg.Trainer.Language
	}

	cat, err := catalog.Load(cfg.Catalog.Directory)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("catalog.Load(%s) > %w", cfg.Catalog.Directory, err)
	}

	repo, db, err := openRepository(cfg, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	t := trainer.New(cat, *language, trainer.WithRepository(repo, userID))
	if err := t.LoadProgress(cmd.Context()); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("t.LoadProgress() > %w", err)
	}
	return t, cat, cleanup, nil
}

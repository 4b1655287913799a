package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocadrill/internal/xlsx"
)

func newImportCommand() *cobra.Command {
	cfg := xlsx.DefaultImportConfig()

	importCommand := &cobra.Command{
		Use:   "import <file>",
		Short: "Import an Excel or CSV word list into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.FilePath = args[0]

			result, err := xlsx.ImportWords(cfg, appCfg.Catalog.Directory)
			if err != nil {
				return fmt.Errorf("xlsx.ImportWords() > %w", err)
			}

			fmt.Printf("Processed %d rows: %d imported, %d skipped, %d files written\n",
				result.TotalProcessed, result.Imported, result.Skipped, result.FilesWritten)
			for _, importError := range result.Errors {
				fmt.Printf("  %s\n", importError)
			}
			return nil
		},
	}
	importCommand.Flags().StringVar(&cfg.Language, "language", cfg.Language, "language the imported words belong to")
	importCommand.Flags().StringVar(&cfg.SheetName, "sheet", cfg.SheetName, "Excel sheet name")
	importCommand.Flags().IntVar(&cfg.StartRow, "start-row", cfg.StartRow, "first data row (1-based)")
	return importCommand
}

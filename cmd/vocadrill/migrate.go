package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"

	"vocadrill/internal/database"
	"vocadrill/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the progress schema to the configured MySQL database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob() > %w", err)
			}
			sort.Strings(entries)

			for _, entry := range entries {
				content, err := fs.ReadFile(schemas.Migrations, entry)
				if err != nil {
					return fmt.Errorf("fs.ReadFile(%s) > %w", entry, err)
				}
				// The connection enables multi-statements, so each file can
				// hold several DDL statements.
				if _, err := db.ExecContext(cmd.Context(), string(content)); err != nil {
					return fmt.Errorf("apply migration %s: %w", entry, err)
				}
				fmt.Printf("Applied %s\n", entry)
			}
			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/remit-labs/remitgen/internal/config"
	"github.com/remit-labs/remitgen/internal/schema"
)

var (
	schemaProvider string
	schemaOut      string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the schema-only SQL dump",
	Long: `
Write the static DDL dump for the dataset: three CREATE TABLE statements
with primary keys and the two foreign keys, no INSERTs.

Examples:
  remitgen schema
  remitgen schema --provider postgres --out ./data/schema.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		provider := cfg.Database.Provider
		if cmd.Flags().Changed("provider") {
			provider = schemaProvider
		}
		dialect, err := schema.DialectFor(provider)
		if err != nil {
			return err
		}

		out := schemaOut
		if out == "" {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			out = filepath.Join(cfg.OutputDir, schema.DumpFileName(dialect))
		}

		if err := schema.WriteDump(out, dialect); err != nil {
			return err
		}

		color.Green("✅ Schema dump written: %s", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaProvider, "provider", "", "SQL dialect: mysql, postgres or sqlite (default from config)")
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "Dump file path (default <output_dir>/<provider>_dump.sql)")
}

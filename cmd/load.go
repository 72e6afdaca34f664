package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/remit-labs/remitgen/internal/config"
	"github.com/remit-labs/remitgen/internal/database"
	"github.com/remit-labs/remitgen/internal/export"
	"github.com/remit-labs/remitgen/internal/generator"
	"github.com/remit-labs/remitgen/internal/loader"
	"github.com/remit-labs/remitgen/internal/model"
	"github.com/remit-labs/remitgen/internal/schema"
)

var (
	loadFrom       string
	loadBatch      int
	loadSkipSchema bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a dataset into the configured database",
	Long: `
Apply the dataset schema and bulk-insert records into the database named
by the configured URL environment variable. With --from, a previously
exported JSON directory is re-parsed and loaded; otherwise a fresh
dataset is generated using the configured counts.

Examples:
  remitgen load
  remitgen load --from ./data
  remitgen load --skip-schema --batch 500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		var ds *model.Dataset
		if loadFrom != "" {
			ds, err = export.ReadDataset(loadFrom)
			if err != nil {
				return err
			}
		} else {
			ds = generator.New(generator.Config{
				NumAgents:       cfg.Counts.Agents,
				NumClients:      cfg.Counts.Clients,
				NumTransactions: cfg.Counts.Transactions,
				Seed:            cfg.Seed,
			}).Generate()
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()

		adapter := database.NewAdapter(cfg.Database.Provider)
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		l := loader.New(adapter.DB(), adapter.Builder())
		l.SetBatchSize(loadBatch)

		if !loadSkipSchema {
			dialect, err := schema.DialectFor(cfg.Database.Provider)
			if err != nil {
				return err
			}
			if err := l.ApplySchema(ctx, dialect); err != nil {
				return err
			}
			color.Cyan("📊 Schema applied")
		}

		if err := l.Load(ctx, ds); err != nil {
			return err
		}

		color.Green("✅ Dataset loaded: %d agents, %d clients, %d transactions",
			len(ds.Agents), len(ds.Clients), len(ds.Transactions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadFrom, "from", "", "Load a previously exported JSON directory instead of generating")
	loadCmd.Flags().IntVar(&loadBatch, "batch", 100, "Insert batch size")
	loadCmd.Flags().BoolVar(&loadSkipSchema, "skip-schema", false, "Skip applying the schema before inserting")
}

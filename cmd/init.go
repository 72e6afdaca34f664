package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/remit-labs/remitgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a remitgen project",
	Long:  `Write a default remitgen.config.json and create the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		color.Green("✅ Created %s", config.FileName)
		color.Cyan("💡 Adjust counts, seed and database settings, then run: remitgen generate")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

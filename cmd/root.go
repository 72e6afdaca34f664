package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   ██████╗ ███████╗███╗   ███╗██╗████████╗    ║",
		"║   ██╔══██╗██╔════╝████╗ ████║██║╚══██╔══╝    ║",
		"║   ██████╔╝█████╗  ██╔████╔██║██║   ██║       ║",
		"║   ██╔══██╗██╔══╝  ██║╚██╔╝██║██║   ██║       ║",
		"║   ██║  ██║███████╗██║ ╚═╝ ██║██║   ██║  gen  ║",
		"║   ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝   ╚═╝       ║",
		"║                                              ║",
		"║      Synthetic remittance dataset toolkit     ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "remitgen",
	Short: "Generate synthetic agent/client/transaction datasets",
	Long: `
remitgen produces randomized but referentially linked Agent, Client and
Transaction records for a money-transfer domain, exports them as CSV and
JSON, emits a schema-only SQL dump, and can load the dataset straight
into MySQL, PostgreSQL or SQLite.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("remitgen CLI version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./remitgen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("remitgen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}

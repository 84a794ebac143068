package profoodie

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "profoodie",
	Short: "profoodie tracks meals, recipes and nutrition goals from your terminal",
	Long:  "profoodie is a local-first nutrition tracker with meal logging, recipes, a weekly meal planner, personalized goals and AI-assisted estimation.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the local database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// flagConfigDir is where app.env is looked up.
var flagConfigDir string

var rootCmd = &cobra.Command{
	Use:          "skillswap",
	Short:        "SkillSwap: trade what you know for what you want to learn",
	SilenceUsage: true,
	Long: `SkillSwap matches people who can teach each other.

Run "skillswap serve" for the HTTP API, or use the offline helpers
to score profiles and seed skill aliases.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", ".", "directory containing app.env")
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "aptctl",
	Short:        "Apartment notifier tools",
	Long:         `Compute distances, annotate coordinates against the configured neighborhoods and transit stations, and clear the listings channel.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newDistanceCmd(), newAnnotateCmd(), newClearCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory product service",
	Long:  "HTTP service for tracking product inventory with low-stock flagging",
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

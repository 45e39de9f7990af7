// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cometfolio",
	Short: "Cometfolio is the backend service for the Portfolio by Comet website",
	Long: `Cometfolio is the backend service for the Portfolio by Comet website.
It serves portfolio content, site theme and media settings, visitor feedback
and visit analytics through a REST API protected by a shared access code.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

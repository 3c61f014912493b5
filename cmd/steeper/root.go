// Root command and persistent flags for the steeper CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/steepworks/steeper/pkg/steeper"
)

// Global flag values.
var (
	flagConfig  string
	flagBackend string
	flagLocator string
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:     "steeper",
	Short:   "Steeper is a tea-variety catalog",
	Version: steeper.Version,
	Long: `Steeper manages a catalog of tea varieties (name, steep time, brew
temperature) over interchangeable backends: an embedded SQLite store or
a remote REST endpoint, typed or enveloped.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .steeper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "backend: sqlite, rest or rest-envelope (default: sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagLocator, "locator", "", "database path or base URL (default by backend)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
}

// Init command: writes the default config and initializes the backend.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configured backend",
	Long: `Init writes .steeper/config.yaml with defaults if absent and
initializes the configured backend. For the sqlite backend this creates
the teas table and seeds the "Earl Grey" default row on a fresh store.
Initializing an already-initialized store is a no-op.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := writeDefaultConfig()
		if err != nil {
			return err
		}
		if written {
			fmt.Println("Wrote default config to .steeper/config.yaml")
		}

		if _, err := newService(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Initialized %s backend at %s\n", resolveBackend(), resolveLocator(resolveBackend()))
		return nil
	},
}

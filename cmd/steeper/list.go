// List command: prints every stored tea variety.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tea varieties",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		teas, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list teas: %w", err)
		}
		return printTeas(teas)
	},
}

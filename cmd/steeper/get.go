// Get command: prints one tea variety by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one tea variety",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}

		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		tea, err := svc.FindByID(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get tea %d: %w", id, err)
		}
		return printTea(tea)
	},
}

// Delete command: removes a tea variety.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tea variety",
	Long: `Delete removes the variety with the given id. The last remaining
variety cannot be deleted.`,
	Args: cobra.ExactArgs(1),
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

		if _, err := svc.Delete(cmd.Context(), tea); err != nil {
			return fmt.Errorf("delete tea %d: %w", id, err)
		}
		fmt.Printf("Deleted %s (id %d)\n", tea.Name, tea.ID)
		return nil
	},
}

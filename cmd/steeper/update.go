// Update command: modifies an existing tea variety.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steepworks/steeper/pkg/types"
)

var (
	updateName  string
	updateSteep string
	updateTemp  int
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a tea variety",
	Long: `Update fetches the variety with the given id, applies the provided
flags, and persists it. Omitted flags keep their stored values.

Example:
  steeper update 2 --temp 200
  steeper update 2 --name "Milk Oolong" --steep 00:04:00`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new name")
	updateCmd.Flags().StringVar(&updateSteep, "steep", "", "new steep time, hh:mm:ss or Go duration")
	updateCmd.Flags().IntVar(&updateTemp, "temp", 0, "new brew temperature in °F")
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	if updateName != "" {
		tea.Name = updateName
	}
	if updateSteep != "" {
		st, err := types.ParseSteepTime(updateSteep)
		if err != nil {
			return err
		}
		tea.SteepTime = st
	}
	if cmd.Flags().Changed("temp") {
		tea.BrewTemp = updateTemp
	}

	updated, err := svc.Update(cmd.Context(), tea)
	if err != nil {
		return fmt.Errorf("update tea %d: %w", id, err)
	}
	return printTea(updated)
}

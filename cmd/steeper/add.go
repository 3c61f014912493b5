// Add command: creates a new tea variety.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steepworks/steeper/pkg/types"
)

var (
	addName  string
	addSteep string
	addTemp  int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new tea variety",
	Long: `Add creates a new tea variety with the given name. Steep time and
brew temperature default to 2 minutes and 212°F.

Example:
  steeper add --name "Oolong" --steep 00:03:00 --temp 195
  steeper add --name "Sencha" --steep 90s --temp 170 --json`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "name of the tea variety (required)")
	addCmd.Flags().StringVar(&addSteep, "steep", "", "steep time, hh:mm:ss or Go duration (default: 00:02:00)")
	addCmd.Flags().IntVar(&addTemp, "temp", types.DefaultBrewTemp, "brew temperature in °F (default: 212)")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	var tea *types.TeaVariety
	if addSteep == "" {
		tea = types.New(addName)
		tea.BrewTemp = addTemp
	} else {
		var err error
		tea, err = types.NewFromText(addName, addSteep, addTemp)
		if err != nil {
			return err
		}
	}

	svc, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	added, err := svc.Add(cmd.Context(), tea)
	if err != nil {
		return fmt.Errorf("add tea %q: %w", addName, err)
	}
	return printTea(added)
}

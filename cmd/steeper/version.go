// Version command for the steeper CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steepworks/steeper/pkg/steeper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the steeper version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("steeper", steeper.Version)
	},
}

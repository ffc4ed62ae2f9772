// Version command for the primekit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/pkg/primekit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the primekit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("primekit", primekit.Version)
	},
}

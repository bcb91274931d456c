package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the application version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskd %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

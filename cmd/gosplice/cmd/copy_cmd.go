package cmd

import (
	"github.com/spf13/cobra"
)

var copyFlags transferFlags

// copyCmd copies a file or a directory tree.
var copyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Copy a file to DST, or a directory into DST",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(cmd, args[0], args[1], copyFlags, false)
	},
}

func init() {
	copyFlags.register(copyCmd)
	rootCmd.AddCommand(copyCmd)
}

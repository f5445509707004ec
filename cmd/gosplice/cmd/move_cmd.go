package cmd

import (
	"github.com/spf13/cobra"
)

var moveFlags transferFlags

// moveCmd copies a file or directory tree and removes the source.
var moveCmd = &cobra.Command{
	Use:   "move SRC DST",
	Short: "Move a file to DST, or a directory into DST",
	Long: `Move SRC by copying it and removing it afterwards. With --skip-exist the
source is kept when some destination files were left alone.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(cmd, args[0], args[1], moveFlags, true)
	},
}

func init() {
	moveFlags.register(moveCmd)
	rootCmd.AddCommand(moveCmd)
}

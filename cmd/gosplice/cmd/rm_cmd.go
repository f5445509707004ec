package cmd

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"gosplice/internal/fsx"
)

// rmCmd removes files and directory trees.
var rmCmd = &cobra.Command{
	Use:   "rm PATH...",
	Short: "Remove files and directories; missing paths are ignored",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		info, err := os.Lstat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return errors.Annotatef(err, "inspecting %s", path)
		}
		if info.IsDir() {
			err = fsx.RemoveDir(path)
		} else {
			err = fsx.RemoveFile(path)
		}
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

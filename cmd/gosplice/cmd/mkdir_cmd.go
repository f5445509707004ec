package cmd

import (
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"gosplice/internal/fsx"
)

var (
	mkdirParents bool
	mkdirErase   bool
)

// mkdirCmd creates directories.
var mkdirCmd = &cobra.Command{
	Use:   "mkdir PATH...",
	Short: "Create directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMkdir,
}

func runMkdir(cmd *cobra.Command, args []string) error {
	create := fsx.CreateDir
	if mkdirParents {
		create = fsx.CreateAll
	}
	for _, path := range args {
		if err := create(path, mkdirErase); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func init() {
	mkdirCmd.Flags().BoolVarP(&mkdirParents, "parents", "p", false, "create missing parent directories")
	mkdirCmd.Flags().BoolVar(&mkdirErase, "erase", false, "remove an existing directory first")
	rootCmd.AddCommand(mkdirCmd)
}

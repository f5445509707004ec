package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"gosplice/internal/fsx"
)

// verifyCmd compares two files by content.
var verifyCmd = &cobra.Command{
	Use:   "verify A B",
	Short: "Check that two files hold the same bytes",
	Args:  cobra.ExactArgs(2),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	same, err := fsx.SameContent(args[0], args[1])
	if err != nil {
		return errors.Trace(err)
	}
	if !same {
		return errors.Errorf("%s and %s differ", args[0], args[1])
	}
	sum, err := fsx.SumFile(args[0])
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "identical, blake3 %s\n", sum)
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

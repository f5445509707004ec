package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gosplice/internal/plan"
	"gosplice/internal/splice"
)

// applyCmd applies every region of a plan to one file.
var applyCmd = &cobra.Command{
	Use:   "apply FILE PLAN",
	Short: "Apply the regions of a YAML edit plan to FILE",
	Long: `Apply all regions listed in PLAN to FILE. Offsets in the plan refer to the
file as it is before any of them is applied. Overlapping regions are rejected
before the file is touched.`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	file, planPath := args[0], args[1]
	p, err := plan.Load(planPath)
	if err != nil {
		return errors.Trace(err)
	}
	regions, err := p.Regions()
	if err != nil {
		return errors.Trace(err)
	}

	size := cfg.BufferSize
	if p.BufferSize > 0 {
		size = p.BufferSize
	}
	logger.Info("applying plan",
		zap.String("file", file),
		zap.String("plan", planPath),
		zap.Int("regions", len(regions)),
		zap.String("buffer_size", size.Human()))

	if err := spliceFile(file, func(f splice.File) error {
		return splice.SpliceAll(f, regions, size.Int())
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: applied %d regions\n", file, len(regions))
	return nil
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"gosplice/internal/plan"
	"gosplice/internal/tui"
)

// planCmd shows what a plan would do without touching any file.
var planCmd = &cobra.Command{
	Use:   "plan PLAN",
	Short: "Show the regions of a YAML edit plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := plan.Load(args[0])
	if err != nil {
		return errors.Trace(err)
	}
	regions, err := p.Regions()
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(regions))
	return nil
}

func init() {
	rootCmd.AddCommand(planCmd)
}

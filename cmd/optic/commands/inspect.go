package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/optic/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <application> [environment]",
		Short: "Print the entries of a compiled artifact",
		Args:  targetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, _ := cmd.Flags().GetString("module")
			return c.app.Inspect(cmd.Context(), app.InspectOptions{
				TargetOptions: c.target(args),
				Module:        module,
				Out:           cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("module", "m", "", "Only print entries of this module")
	return cmd
}

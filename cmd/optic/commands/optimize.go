package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/optic/internal/app"
)

func (c *CLI) newOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <application> [environment]",
		Short: "Compile the resource lookup artifact of an application",
		Long: `Resolves the winning location of every template, controller directory and
helper of an application across the application, plugin, framework and generated
module trees, warms the per-module configuration caches and writes the result to
<cache>/<application>/<environment>/config/configuration.json.

Re-run the command every time the project changes.`,
		Args: targetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Optimize(cmd.Context(), app.OptimizeOptions{
				TargetOptions: c.target(args),
				Verbose:       c.config.GetBool("verbose"),
			})
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/optic/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <application> [environment]",
		Short: "Optimize again whenever the project changes",
		Args:  targetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				TargetOptions: c.target(args),
				Verbose:       c.config.GetBool("verbose"),
			})
		},
	}
}

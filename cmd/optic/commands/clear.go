package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/optic/internal/app"
)

func (c *CLI) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <application> [environment]",
		Short: "Remove the artifact and compiled caches of an application",
		Args:  targetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clear(cmd.Context(), app.ClearOptions{TargetOptions: c.target(args)})
		},
	}
}

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [workspace]",
		Short: "Validate a workspace and re-validate on file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Watch(cmd.Context(), workspaceDir(args))
			if errors.Is(err, context.Canceled) {
				// Normal shutdown via signal.
				return nil
			}
			return err
		},
	}
}

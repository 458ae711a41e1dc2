package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ember/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [workspace]",
		Short: "Validate all resources of a workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			save, _ := cmd.Flags().GetBool("save")

			return c.app.Check(cmd.Context(), workspaceDir(args), app.CheckOptions{
				Save: save,
			})
		},
	}
	cmd.Flags().BoolP("save", "s", false, "Write the workspace back to disk after validation")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove bootstrap records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := c.cwd()
			if err != nil {
				return err
			}
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), cwd, all)
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Also remove the 3rdparty tree and build.log")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <program>",
		Short: "List every PATH entry holding an executable program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLines(cmd.OutOrStdout(), c.app.Which(args[0]))
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCompilerVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compiler-version <compiler>",
		Short: "Print the version reported by a compiler, or 0 when unknown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := c.app.CompilerVersion(cmd.Context(), args[0])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

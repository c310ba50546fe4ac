package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/envkit/internal/app"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Configure the environment described by envkit.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := c.cwd()
			if err != nil {
				return err
			}
			exec, _ := cmd.Flags().GetBool("exec")

			res, err := c.app.Apply(cmd.Context(), cwd, app.ApplyOptions{Exec: exec})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printEnvironment(w, res.Env)
			for _, obj := range res.Objects {
				_, _ = fmt.Fprintf(w, "OBJECT=%s\n", obj.Source)
			}
			if res.ClangDB != "" {
				_, _ = fmt.Fprintf(w, "CLANGDB=%s\n", res.ClangDB)
			}
			for _, a := range res.Actions {
				_, _ = fmt.Fprintf(w, "ACTION %s -> %s\n", a.Label(), strings.Join(a.Targets, " "))
			}
			return nil
		},
	}
	cmd.Flags().Bool("exec", false, "Run the registered actions in registration order")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/envkit/internal/app"
	"go.trai.ch/envkit/internal/core/domain"
)

func (c *CLI) newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap <name>...",
		Short: "Build missing third-party dependencies and print the resulting paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := c.cwd()
			if err != nil {
				return err
			}

			toolchain, _ := cmd.Flags().GetString("toolchain")
			includes, _ := cmd.Flags().GetStringArray("include")
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")

			opts := app.BootstrapOptions{Toolchain: toolchain, Includes: includes}
			switch {
			case verbose:
				opts.Pretty = domain.PrettyOff
			case quiet:
				opts.Pretty = domain.PrettyOn
			}

			env, err := c.app.Bootstrap(cmd.Context(), cwd, args, opts)
			if err != nil {
				return err
			}
			printEnvironment(cmd.OutOrStdout(), env)
			return nil
		},
	}
	cmd.Flags().StringP("toolchain", "t", "", "Toolchain identifier passed to the builder")
	cmd.Flags().StringArrayP("include", "I", nil, "Include subdirectory to add to the header search path")
	cmd.Flags().BoolP("verbose", "v", false, "Stream builder output instead of writing build.log")
	cmd.Flags().BoolP("quiet", "q", false, "Write builder output to build.log")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	return cmd
}

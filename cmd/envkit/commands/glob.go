package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGlobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glob",
		Short: "Recursively collect files matching patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			if root == "" {
				cwd, err := c.cwd()
				if err != nil {
					return err
				}
				root = cwd
			}
			dirs, _ := cmd.Flags().GetStringArray("dir")
			patterns, _ := cmd.Flags().GetStringArray("pattern")
			exclude, _ := cmd.Flags().GetStringArray("exclude")

			files, err := c.app.Glob(root, dirs, patterns, exclude)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), files)
			return nil
		},
	}
	cmd.Flags().String("root", "", "Directory results are relative to (default: working directory)")
	cmd.Flags().StringArrayP("dir", "d", []string{"."}, "Directory to search")
	cmd.Flags().StringArrayP("pattern", "p", nil, "Base name pattern to match")
	cmd.Flags().StringArrayP("exclude", "x", nil, "Pattern excluding a relative path or base name")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}

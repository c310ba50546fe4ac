package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/envkit/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile and run a program testing a library capability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := c.cwd()
			if err != nil {
				return err
			}

			libs, _ := cmd.Flags().GetStringArray("lib")
			headers, _ := cmd.Flags().GetStringArray("header")
			lang, _ := cmd.Flags().GetString("lang")
			expr, _ := cmd.Flags().GetString("expr")

			ok, err := c.app.Check(cmd.Context(), cwd, domain.Check{
				Libs:     domain.Strings(libs...),
				Headers:  domain.Strings(headers...),
				Language: strings.ToLower(lang),
				Expr:     expr,
			})
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().StringArrayP("lib", "l", nil, "Library to link")
	cmd.Flags().StringArrayP("header", "H", nil, "Header to include")
	cmd.Flags().String("lang", "c", "Source language (c, cpp, cxx, cc)")
	cmd.Flags().StringP("expr", "e", "1", "Expression that must evaluate to non-zero")
	_ = cmd.MarkFlagRequired("lib")
	return cmd
}

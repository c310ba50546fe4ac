// Package commands implements the CLI commands for envkit.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/envkit/internal/app"
	"go.trai.ch/envkit/internal/build"
	"go.trai.ch/envkit/internal/core/ports"
)

// jsonSetter is implemented by loggers that can switch to JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for envkit.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
	cwd     func() (string, error)
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "envkit",
		Short:         "Bootstrap third-party dependencies and probe the build toolchain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log messages as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
		cwd:     os.Getwd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enable, _ := cmd.Flags().GetBool("log-json"); enable {
			if l, ok := c.logger.(jsonSetter); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newBootstrapCmd())
	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newGlobCmd())
	rootCmd.AddCommand(c.newCompilerVersionCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Package commands implements the CLI commands for cargowrap.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cargowrap.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:   "cargowrap <cargo> [args...]",
		Short: "Run cargo build with the linker and flags chosen for a mixed-language project",
		Long: "cargowrap runs `<cargo> build [args...]` after selecting the preferred linker\n" +
			"language from CORROSION_LINKER_LANGUAGES and composing RUSTFLAGS, CFLAGS,\n" +
			"CXXFLAGS and the target linker variable for the child process.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Every token after the executable belongs to the build tool.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args)
		},
	}

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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// Package commands implements the CLI commands for rescache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rescache/internal/app"
	"go.trai.ch/rescache/internal/build"
)

// CLI represents the command line interface for rescache.
type CLI struct {
	app     Application
	log     LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.CheckOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// LogSettings is the part of the logger the global flags configure.
type LogSettings interface {
	SetVerbose(verbose bool)
	SetJSON(enabled bool)
}

// New creates a new CLI instance. log may be nil if the logger cannot be
// reconfigured.
func New(a Application, log LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rescache",
		Short:         "Validate the references between authored resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log task progress and debug details")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = c.configureLogging

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) {
	if c.log == nil {
		return
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.log.SetVerbose(verbose)
	if cmd.Flags().Changed("json") {
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.log.SetJSON(jsonMode)
	}
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

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rescache/internal/app"
)

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "Number of validation workers (default: manifest value, then one per CPU)")
	cmd.Flags().Bool("strict", false, "Panic on cache API misuse instead of logging a warning")
}

func checkOptions(cmd *cobra.Command, args []string) app.CheckOptions {
	workers, _ := cmd.Flags().GetInt("workers")
	strict, _ := cmd.Flags().GetBool("strict")

	opts := app.CheckOptions{Workers: workers, Strict: strict}
	if len(args) > 0 {
		opts.Dir = args[0]
	}
	return opts
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate every resource of the workspace once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Check(cmd.Context(), checkOptions(cmd, args))
		},
	}
	addCheckFlags(cmd)
	return cmd
}

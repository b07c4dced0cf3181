package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rescache/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Validate the workspace and re-validate resources whose files change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				CheckOptions: checkOptions(cmd, args),
				MetricsAddr:  metricsAddr,
			})
		},
	}
	addCheckFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

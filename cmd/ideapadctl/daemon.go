package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ideapad-go/ideapadctl/pkg/daemon"
)

// NewDaemonCommand runs the daemon in the foreground. Normally started by
// systemd via the install command, not by hand.
func NewDaemonCommand() *cobra.Command {
	allowNonRoot := false

	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run the ideapadctl daemon",
		GroupID: gAdvanced,
		Long: `Run the ideapadctl daemon in the foreground.

The daemon owns the acpi_call channel and serves feature controls over a unix socket. It must run as root.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// A stale socket from a previous run prevents listening.
			_ = os.Remove(unixSocketPath)
			return daemon.Run(configPath, unixSocketPath, allowNonRoot)
		},
	}

	cmd.Flags().BoolVar(&allowNonRoot, "allow-non-root-access", false, "allow non-root users to access the daemon socket")

	return cmd
}

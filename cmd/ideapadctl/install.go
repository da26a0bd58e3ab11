package main

import (
	"fmt"
	"os"
	"os/exec"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ideapad-go/ideapadctl/pkg/config"
)

const unitPath = "/etc/systemd/system/ideapadctl.service"

const unitTemplate = `[Unit]
Description=ideapadctl daemon
After=multi-user.target

[Service]
Type=simple
ExecStart=%s daemon --config %s --daemon-socket %s
Restart=on-failure

[Install]
WantedBy=multi-user.target
`

// NewInstallCommand installs the daemon as a systemd unit.
func NewInstallCommand() *cobra.Command {
	allowNonRootAccess := false

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install ideapadctl (system-wide)",
		GroupID: gInstallation,
		Long: `Install the ideapadctl daemon as a systemd unit (system-wide).

This makes the daemon run in the background and automatically start on boot. You must run this command as root.

By default, only root is allowed to access the daemon for safety reasons: these controls poke firmware directly. If you want to allow non-root users, i.e., you, to access the daemon, use the --allow-non-root-access flag, so you don't have to use sudo every time.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			conf.SetAllowNonRootAccess(allowNonRootAccess)
			if allowNonRootAccess {
				logrus.Info("non-root users are allowed to access the ideapadctl daemon.")
			} else {
				logrus.Info("only root is allowed to access the ideapadctl daemon.")
			}

			if err := conf.Save(); err != nil {
				return pkgerrors.Wrapf(err, "failed to save config")
			}

			exe, err := os.Executable()
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to locate the ideapadctl binary")
			}

			unit := fmt.Sprintf(unitTemplate, exe, configPath, unixSocketPath)
			if err := os.WriteFile(unitPath, []byte(unit), 0o644); err != nil {
				if os.Geteuid() != 0 {
					logrus.Errorf("you must run this command as root")
				}
				return fmt.Errorf("failed to write systemd unit: %v. Are you root?", err)
			}

			for _, args := range [][]string{
				{"daemon-reload"},
				{"enable", "--now", "ideapadctl.service"},
			} {
				if out, err := exec.Command("systemctl", args...).CombinedOutput(); err != nil {
					return fmt.Errorf("systemctl %v failed: %v: %s", args, err, out)
				}
			}

			logrus.Infof("installed and started ideapadctl.service")

			return nil
		},
	}

	cmd.Flags().BoolVar(&allowNonRootAccess, "allow-non-root-access", false, "allow non-root users to access the daemon socket")

	return cmd
}

// NewUninstallCommand removes the systemd unit.
func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Uninstall ideapadctl (system-wide)",
		GroupID: gInstallation,
		RunE: func(_ *cobra.Command, _ []string) error {
			if out, err := exec.Command("systemctl", "disable", "--now", "ideapadctl.service").CombinedOutput(); err != nil {
				logrus.Warnf("systemctl disable failed: %v: %s", err, out)
			}

			if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
				if os.Geteuid() != 0 {
					logrus.Errorf("you must run this command as root")
				}
				return fmt.Errorf("failed to remove systemd unit: %v. Are you root?", err)
			}

			if out, err := exec.Command("systemctl", "daemon-reload").CombinedOutput(); err != nil {
				logrus.Warnf("systemctl daemon-reload failed: %v: %s", err, out)
			}

			logrus.Infof("uninstalled ideapadctl.service")

			return nil
		},
	}
}

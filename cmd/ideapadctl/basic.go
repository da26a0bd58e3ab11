package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ideapad-go/ideapadctl/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

// featureCommands builds the enable/disable/status subcommands shared by
// battery conservation and rapid charge.
func featureCommands(
	name string,
	get func() (string, error),
	set func(enable bool, handler string, unchecked bool) (string, error),
) []*cobra.Command {
	handler := ""
	unchecked := false

	enable := &cobra.Command{
		Use:   "enable",
		Short: "Enable " + name,
		RunE: func(_ *cobra.Command, _ []string) error {
			ret, err := set(true, handler, unchecked)
			if err != nil {
				return fmt.Errorf("failed to enable %s: %w", name, err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully enabled %s", name)

			return nil
		},
	}
	enable.Flags().StringVar(&handler, "handler", "", "conflict handler: switch, ignore or error (default: daemon config)")
	enable.Flags().BoolVar(&unchecked, "unchecked", false, "skip conflict resolution entirely")

	disable := &cobra.Command{
		Use:   "disable",
		Short: "Disable " + name,
		RunE: func(_ *cobra.Command, _ []string) error {
			ret, err := set(false, "", false)
			if err != nil {
				return fmt.Errorf("failed to disable %s: %w", name, err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully disabled %s", name)

			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Get the current state of " + name,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := get()
			if err != nil {
				return fmt.Errorf("failed to get %s state: %w", name, err)
			}

			logrus.Infof("%s is %s", name, st)

			return nil
		},
	}

	return []*cobra.Command{enable, disable, status}
}

func NewConservationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conservation",
		Short:   "Control battery conservation mode",
		GroupID: gBasic,
		Long: `Control battery conservation mode.

Battery conservation caps the battery charge level (usually at 60%) to reduce wear when the laptop mostly runs off the wall. It is mutually exclusive with rapid charge: enabling it while rapid charge is active will, by default, switch rapid charge off first.`,
	}

	cmd.AddCommand(featureCommands("battery conservation",
		apiClient.GetConservation,
		apiClient.SetConservation,
	)...)

	return cmd
}

func NewRapidChargeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rapid-charge",
		Short:   "Control rapid charge",
		GroupID: gBasic,
		Long: `Control rapid charge.

Rapid charge makes the firmware charge the battery faster. It is mutually exclusive with battery conservation: enabling it while conservation is active will, by default, switch conservation off first.`,
	}

	cmd.AddCommand(featureCommands("rapid charge",
		apiClient.GetRapidCharge,
		apiClient.SetRapidCharge,
	)...)

	return cmd
}

func NewPerformanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "performance",
		Short:   "Control the system performance mode",
		GroupID: gBasic,
		Long: `Control the system performance mode.

Modes: intelligent-cooling (balanced), extreme-performance (max performance, louder), battery-saving (cooler, quieter, best battery life).`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Get the current performance mode",
			RunE: func(_ *cobra.Command, _ []string) error {
				mode, err := apiClient.GetPerformance()
				if err != nil {
					return fmt.Errorf("failed to get performance mode: %w", err)
				}

				logrus.Infof("performance mode is %s", mode)

				return nil
			},
		},
		&cobra.Command{
			Use:       "set [mode]",
			Short:     "Set the performance mode",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"intelligent-cooling", "extreme-performance", "battery-saving"},
			RunE: func(_ *cobra.Command, args []string) error {
				ret, err := apiClient.SetPerformance(args[0])
				if err != nil {
					return fmt.Errorf("failed to set performance mode: %w", err)
				}

				if ret != "" {
					logrus.Infof("daemon responded: %s", ret)
				}

				logrus.Infof("successfully set performance mode to %s", args[0])

				return nil
			},
		},
	)

	return cmd
}

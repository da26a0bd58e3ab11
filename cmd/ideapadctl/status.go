package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ideapad-go/ideapadctl/pkg/powerinfo"
	"github.com/ideapad-go/ideapadctl/pkg/types"
)

type statusData struct {
	conservation string
	rapidCharge  string
	performance  string
	batteryInfo  *powerinfo.Battery
	profile      *types.ProfileInfo
}

// fetchStatusData gathers all data required for the status command from the daemon.
func fetchStatusData() (*statusData, error) {
	conservation, err := apiClient.GetConservation()
	if err != nil {
		return nil, fmt.Errorf("failed to get battery conservation state: %w", err)
	}

	rapidCharge, err := apiClient.GetRapidCharge()
	if err != nil {
		return nil, fmt.Errorf("failed to get rapid charge state: %w", err)
	}

	performance, err := apiClient.GetPerformance()
	if err != nil {
		// Unlike the tri-state features, a preset query can fail outright
		// (mismatched status bits). Still show the rest of the status.
		performance = "unavailable: " + err.Error()
	}

	bat, err := apiClient.GetBatteryInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get battery info: %w", err)
	}

	profile, err := apiClient.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &statusData{
		conservation: conservation,
		rapidCharge:  rapidCharge,
		performance:  performance,
		batteryInfo:  bat,
		profile:      profile,
	}, nil
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current status of all controlled features",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := fetchStatusData()
			if err != nil {
				return err
			}

			cmd.Println(bold("Profile:"))
			cmd.Printf("  %s (products %v)\n", data.profile.Name, data.profile.Products)

			cmd.Println(bold("Features:"))
			cmd.Println("  Battery conservation: " + state2Text(data.conservation))
			if data.conservation == "enabled" {
				cmd.Println("    Battery charge is capped by firmware to reduce wear.")
			}
			cmd.Println("  Rapid charge:         " + state2Text(data.rapidCharge))
			cmd.Println("  Performance mode:     " + data.performance)

			cmd.Println(bold("Battery:"))
			if pct := data.batteryInfo.ChargePercent(); pct >= 0 {
				cmd.Printf("  Charge: %d%% (%s)\n", pct, data.batteryInfo.State)
			} else {
				cmd.Printf("  State: %s\n", data.batteryInfo.State)
			}

			return nil
		},
	}
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func state2Text(state string) string {
	switch state {
	case "enabled":
		return color.GreenString("enabled")
	case "disabled":
		return color.RedString("disabled")
	default:
		// The firmware replied with a value the decoder does not recognize.
		return color.YellowString(state)
	}
}

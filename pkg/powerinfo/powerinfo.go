// Package powerinfo reads battery information from the OS, independent of
// the firmware control path. It backs the status surface only.
package powerinfo

import (
	"errors"
	"fmt"

	"github.com/distatus/battery"
)

// BatteryState mirrors the charging states reported by the OS.
type BatteryState int

const (
	Unknown BatteryState = iota
	Empty
	Full
	Charging
	Discharging
)

func (s BatteryState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Full:
		return "Full"
	case Charging:
		return "Charging"
	case Discharging:
		return "Discharging"
	default:
		return "Unknown"
	}
}

// Battery is a minimal battery info structure containing the fields used by
// the client and CLI. Field names match the daemon's JSON, which serves the
// OS battery structure as-is.
// Units:
// - Current/Full/Design: mWh
// - ChargeRate: mW
type Battery struct {
	State      BatteryState `json:"State"`
	Current    float64      `json:"Current"`
	Full       float64      `json:"Full"`
	Design     float64      `json:"Design"`
	ChargeRate float64      `json:"ChargeRate"`
}

// ChargePercent returns the current charge as a percentage, or -1 when the
// full capacity is unknown.
func (b *Battery) ChargePercent() int {
	if b.Full <= 0 {
		return -1
	}
	return int(b.Current / b.Full * 100)
}

// Read returns a snapshot of the first battery, straight from the OS.
func Read() (*Battery, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read batteries: %w", err)
	}
	if len(batteries) == 0 {
		return nil, errors.New("no battery found")
	}

	b := batteries[0]

	return &Battery{
		State:      BatteryState(b.State),
		Current:    b.Current,
		Full:       b.Full,
		Design:     b.Design,
		ChargeRate: b.ChargeRate,
	}, nil
}

package power

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/profile"
)

// PerformanceController drives the system performance preset. Presets do not
// conflict with the battery features, so there is no handler machinery here;
// setting a preset is a single hardware call.
type PerformanceController struct {
	m *Manager
}

// SetMode sets the system performance preset.
func (c *PerformanceController) SetMode(mode profile.Mode) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	d, err := c.m.profile.Resolve(profile.SystemPerformance, profile.OpSetMode)
	if err != nil {
		return err
	}

	arg := c.m.profile.Performance.SetArgs.For(mode)
	if _, err := c.m.acpi.Call(d.Method, arg); err != nil {
		return fmt.Errorf("failed to set performance mode to %s: %w", mode, err)
	}

	logrus.Debugf("system performance: set to %s", mode)

	return nil
}

// Mode queries the current preset. Firmware reports it through two status
// bits, SPMO and FCMO; both are read and cross-checked, and a disagreement
// is reported as ErrModeMismatch.
func (c *PerformanceController) Mode() (profile.Mode, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	perf := c.m.profile.Performance
	if perf.SPMOMethod == "" || perf.FCMOMethod == "" {
		return 0, fmt.Errorf("%w: query system performance in profile %s",
			profile.ErrOperationNotSupported, c.m.profile.Name)
	}

	spmoRaw, err := c.m.acpi.Call(perf.SPMOMethod)
	if err != nil {
		return 0, err
	}
	fcmoRaw, err := c.m.acpi.Call(perf.FCMOMethod)
	if err != nil {
		return 0, err
	}

	spmo, ok := c.m.profile.DecodeMode(spmoRaw)
	if !ok {
		return 0, fmt.Errorf("%w: spmo=%#x", ErrInvalidMode, spmoRaw)
	}
	fcmo, ok := c.m.profile.DecodeMode(fcmoRaw)
	if !ok {
		return 0, fmt.Errorf("%w: fcmo=%#x", ErrInvalidMode, fcmoRaw)
	}

	if spmo != fcmo {
		return 0, fmt.Errorf("%w: spmo=%s fcmo=%s", ErrModeMismatch, spmo, fcmo)
	}

	return spmo, nil
}

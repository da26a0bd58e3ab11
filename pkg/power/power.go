// Package power exposes the controllable firmware features of IdeaPad
// laptops: battery conservation, rapid charge and the system performance
// preset. All state lives in firmware and is re-queried on every call;
// nothing is persisted here.
package power

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/acpicall"
	"github.com/ideapad-go/ideapadctl/pkg/profile"
)

// Manager owns one profile and one gateway and hands out feature
// controllers. The mutex serializes every hardware-call sequence, most
// importantly the Switch handler's disable-then-enable pair: the gateway
// does no locking of its own and interleaved calls would race on firmware
// state.
type Manager struct {
	profile *profile.Profile
	acpi    acpicall.Caller
	mu      sync.Mutex
}

// NewManager builds a Manager from an explicit profile and gateway. Tests
// use this directly with a stub gateway; production code normally goes
// through Init.
func NewManager(p *profile.Profile, c acpicall.Caller) *Manager {
	return &Manager{profile: p, acpi: c}
}

// Profile returns the profile this manager was built with.
func (m *Manager) Profile() *profile.Profile {
	return m.profile
}

// BatteryConservation returns the battery conservation controller.
func (m *Manager) BatteryConservation() *FeatureController {
	return &FeatureController{m: m, feature: profile.BatteryConservation, peer: profile.RapidCharge}
}

// RapidCharge returns the rapid charge controller.
func (m *Manager) RapidCharge() *FeatureController {
	return &FeatureController{m: m, feature: profile.RapidCharge, peer: profile.BatteryConservation}
}

// SystemPerformance returns the system performance controller.
func (m *Manager) SystemPerformance() *PerformanceController {
	return &PerformanceController{m: m}
}

var (
	activeMu sync.Mutex
	active   *Manager
)

// Init auto-detects the running machine's profile and sets up the
// process-wide manager. The first successful call wins; any later call is a
// no-op that returns the already-active manager without touching hardware.
func Init() (*Manager, error) {
	return initActive(func() (*profile.Profile, error) {
		return profile.Detect(profile.ProductName)
	})
}

// InitWithProfile is Init with an explicit profile, bypassing
// auto-detection.
//
// Supplying the wrong profile for the running hardware may invoke undefined
// firmware behavior. Only use this if you know what your machine implements.
func InitWithProfile(p *profile.Profile) (*Manager, error) {
	return initActive(func() (*profile.Profile, error) { return p, nil })
}

// Active returns the process-wide manager, if Init succeeded before.
func Active() (*Manager, bool) {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active, active != nil
}

func initActive(pick func() (*profile.Profile, error)) (*Manager, error) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active != nil {
		return active, nil
	}

	p, err := pick()
	if err != nil {
		return nil, err
	}

	logrus.Infof("using profile %s", p.Name)

	active = NewManager(p, acpicall.New())

	return active, nil
}

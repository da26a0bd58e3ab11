package power

import (
	"errors"
	"testing"

	"github.com/ideapad-go/ideapadctl/pkg/profile"
)

// fakeFirmware emulates the firmware side of acpi_call for one profile:
// writes through the battery set method and the performance set method
// update internal state, status methods read it back.
type fakeFirmware struct {
	p     *profile.Profile
	state map[string]uint32
	calls []string
	fail  map[string]error
}

func newFakeFirmware(p *profile.Profile) *fakeFirmware {
	return &fakeFirmware{
		p: p,
		state: map[string]uint32{
			p.Battery.Conservation.GetMethod: 0,
			p.Battery.RapidCharge.GetMethod:  0,
			p.Performance.SPMOMethod:         0,
			p.Performance.FCMOMethod:         0,
		},
		fail: map[string]error{},
	}
}

func (f *fakeFirmware) Call(method string, args ...uint32) (uint32, error) {
	f.calls = append(f.calls, method)

	if err := f.fail[method]; err != nil {
		return 0, err
	}

	switch method {
	case f.p.Battery.SetMethod:
		switch args[0] {
		case f.p.Battery.Conservation.EnableArg:
			f.state[f.p.Battery.Conservation.GetMethod] = f.p.Battery.Conservation.OnValue
		case f.p.Battery.Conservation.DisableArg:
			f.state[f.p.Battery.Conservation.GetMethod] = f.p.Battery.Conservation.OffValue
		case f.p.Battery.RapidCharge.EnableArg:
			f.state[f.p.Battery.RapidCharge.GetMethod] = f.p.Battery.RapidCharge.OnValue
		case f.p.Battery.RapidCharge.DisableArg:
			f.state[f.p.Battery.RapidCharge.GetMethod] = f.p.Battery.RapidCharge.OffValue
		}
		return 0, nil
	case f.p.Performance.SetMethod:
		mode, ok := f.p.Performance.SetArgs.Mode(args[0])
		if ok {
			bit := f.p.Performance.Bits.For(mode)
			f.state[f.p.Performance.SPMOMethod] = bit
			f.state[f.p.Performance.FCMOMethod] = bit
		}
		return 0, nil
	default:
		return f.state[method], nil
	}
}

func (f *fakeFirmware) callCount() int {
	return len(f.calls)
}

func newTestManager(t *testing.T) (*Manager, *fakeFirmware) {
	t.Helper()
	fw := newFakeFirmware(profile.IdeaPad15IIL05)
	return NewManager(profile.IdeaPad15IIL05, fw), fw
}

func TestFeatureRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)

	for _, fc := range []*FeatureController{m.BatteryConservation(), m.RapidCharge()} {
		if err := fc.Enable(); err != nil {
			t.Fatalf("failed to enable %s: %v", fc.Feature(), err)
		}
		enabled, err := fc.Enabled()
		if err != nil {
			t.Fatalf("failed to query %s: %v", fc.Feature(), err)
		}
		if !enabled {
			t.Fatalf("%s should be enabled after Enable", fc.Feature())
		}

		if err := fc.Disable(); err != nil {
			t.Fatalf("failed to disable %s: %v", fc.Feature(), err)
		}
		disabled, err := fc.Disabled()
		if err != nil {
			t.Fatalf("failed to query %s: %v", fc.Feature(), err)
		}
		if !disabled {
			t.Fatalf("%s should be disabled after Disable", fc.Feature())
		}
	}
}

func TestUnknownStateIsNeitherEnabledNorDisabled(t *testing.T) {
	m, fw := newTestManager(t)

	fw.state[profile.IdeaPad15IIL05.Battery.Conservation.GetMethod] = 0x80

	fc := m.BatteryConservation()

	st, err := fc.State()
	if err != nil {
		t.Fatalf("State returned error: %v", err)
	}
	if st != profile.StateUnknown {
		t.Fatalf("expected StateUnknown, got %v", st)
	}

	enabled, _ := fc.Enabled()
	disabled, _ := fc.Disabled()
	if enabled || disabled {
		t.Fatalf("unknown state must report neither enabled (%t) nor disabled (%t)", enabled, disabled)
	}
}

func TestEnableSwitchDisablesPeer(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.RapidCharge().Enable(); err != nil {
		t.Fatalf("failed to enable rapid charge: %v", err)
	}

	// Default handler is Switch.
	if err := m.BatteryConservation().Enable(); err != nil {
		t.Fatalf("failed to enable battery conservation: %v", err)
	}

	rcDisabled, err := m.RapidCharge().Disabled()
	if err != nil {
		t.Fatalf("failed to query rapid charge: %v", err)
	}
	if !rcDisabled {
		t.Fatalf("switch handler should have disabled rapid charge")
	}

	bcEnabled, err := m.BatteryConservation().Enabled()
	if err != nil {
		t.Fatalf("failed to query battery conservation: %v", err)
	}
	if !bcEnabled {
		t.Fatalf("battery conservation should be enabled")
	}
}

func TestEnableUncheckedIgnoresConflict(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.RapidCharge().Enable(); err != nil {
		t.Fatalf("failed to enable rapid charge: %v", err)
	}

	if err := m.BatteryConservation().EnableUnchecked(); err != nil {
		t.Fatalf("failed to enable battery conservation unchecked: %v", err)
	}

	rcEnabled, err := m.RapidCharge().Enabled()
	if err != nil {
		t.Fatalf("failed to query rapid charge: %v", err)
	}
	if !rcEnabled {
		t.Fatalf("unchecked enable must not touch rapid charge")
	}
}

func TestEnableStrictFailsWithoutHardwareCall(t *testing.T) {
	m, fw := newTestManager(t)

	if err := m.BatteryConservation().Enable(); err != nil {
		t.Fatalf("failed to enable battery conservation: %v", err)
	}

	before := fw.callCount()

	err := m.RapidCharge().EnableStrict()
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Only the peer status query may have happened, no set call.
	if got := fw.callCount() - before; got != 1 {
		t.Fatalf("expected exactly 1 hardware call (the peer query), got %d", got)
	}

	bcEnabled, err := m.BatteryConservation().Enabled()
	if err != nil {
		t.Fatalf("failed to query battery conservation: %v", err)
	}
	if !bcEnabled {
		t.Fatalf("battery conservation must be untouched by the error handler")
	}
}

func TestEnableProceedsWhenPeerUnknown(t *testing.T) {
	m, fw := newTestManager(t)

	fw.state[profile.IdeaPad15IIL05.Battery.RapidCharge.GetMethod] = 0x80

	// Unknown peer state is not a confirmed conflict, even for the strict
	// handler.
	if err := m.BatteryConservation().EnableStrict(); err != nil {
		t.Fatalf("enable should proceed on unknown peer state, got %v", err)
	}

	bcEnabled, err := m.BatteryConservation().Enabled()
	if err != nil {
		t.Fatalf("failed to query battery conservation: %v", err)
	}
	if !bcEnabled {
		t.Fatalf("battery conservation should be enabled")
	}
}

func TestEnableSwitchFailStop(t *testing.T) {
	m, fw := newTestManager(t)

	if err := m.RapidCharge().Enable(); err != nil {
		t.Fatalf("failed to enable rapid charge: %v", err)
	}

	// Make the shared set method fail: the switch handler's disable fails,
	// so the enable must never be attempted.
	boom := errors.New("transport exploded")
	fw.fail[profile.IdeaPad15IIL05.Battery.SetMethod] = boom

	err := m.BatteryConservation().Enable()
	if !errors.Is(err, boom) {
		t.Fatalf("expected the disable error to surface, got %v", err)
	}

	// One peer query plus one failed disable; no second set call.
	setCalls := 0
	for _, c := range fw.calls {
		if c == profile.IdeaPad15IIL05.Battery.SetMethod {
			setCalls++
		}
	}
	// First Enable made one set call, the failing switch one more.
	if setCalls != 2 {
		t.Fatalf("expected no enable attempt after failed disable, got %d set calls", setCalls)
	}
}

func TestPerformanceRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	pc := m.SystemPerformance()

	for _, mode := range []profile.Mode{
		profile.ModeExtremePerformance,
		profile.ModeBatterySaving,
		profile.ModeIntelligentCooling,
	} {
		if err := pc.SetMode(mode); err != nil {
			t.Fatalf("failed to set mode %s: %v", mode, err)
		}

		got, err := pc.Mode()
		if err != nil {
			t.Fatalf("failed to query mode: %v", err)
		}
		if got != mode {
			t.Fatalf("mode = %s, want %s", got, mode)
		}
	}
}

func TestPerformanceModeMismatch(t *testing.T) {
	m, fw := newTestManager(t)

	fw.state[profile.IdeaPad15IIL05.Performance.SPMOMethod] = 0x1
	fw.state[profile.IdeaPad15IIL05.Performance.FCMOMethod] = 0x2

	_, err := m.SystemPerformance().Mode()
	if !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("expected ErrModeMismatch, got %v", err)
	}
}

func TestPerformanceInvalidModeBit(t *testing.T) {
	m, fw := newTestManager(t)

	fw.state[profile.IdeaPad15IIL05.Performance.SPMOMethod] = 0x9

	_, err := m.SystemPerformance().Mode()
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestResolveErrorsPropagate(t *testing.T) {
	partial := &profile.Profile{Name: "PARTIAL"}
	m := NewManager(partial, newFakeFirmware(profile.IdeaPad15IIL05))

	_, err := m.BatteryConservation().State()
	if !errors.Is(err, profile.ErrOperationNotSupported) {
		t.Fatalf("expected ErrOperationNotSupported, got %v", err)
	}

	err = m.RapidCharge().Enable()
	if !errors.Is(err, profile.ErrOperationNotSupported) {
		t.Fatalf("expected ErrOperationNotSupported, got %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	// Not parallel: exercises the process-wide manager.
	m1, err := InitWithProfile(profile.IdeaPad15IIL05)
	if err != nil {
		t.Fatalf("InitWithProfile returned error: %v", err)
	}

	m2, err := InitWithProfile(profile.IdeaPadAMD)
	if err != nil {
		t.Fatalf("second init returned error: %v", err)
	}

	if m1 != m2 {
		t.Fatalf("second init must return the already-active manager")
	}
	if m2.Profile() != profile.IdeaPad15IIL05 {
		t.Fatalf("second init must not change the active profile")
	}

	m3, err := Init()
	if err != nil {
		t.Fatalf("Init after InitWithProfile returned error: %v", err)
	}
	if m3 != m1 {
		t.Fatalf("Init must be a no-op once a manager is active")
	}

	active, ok := Active()
	if !ok || active != m1 {
		t.Fatalf("Active should return the initialized manager")
	}
}

func TestParseHandler(t *testing.T) {
	for s, want := range map[string]Handler{
		"":       HandlerSwitch,
		"switch": HandlerSwitch,
		"ignore": HandlerIgnore,
		"error":  HandlerError,
	} {
		got, err := ParseHandler(s)
		if err != nil {
			t.Fatalf("ParseHandler(%q) returned error: %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseHandler(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseHandler("panic"); err == nil {
		t.Fatalf("ParseHandler should reject unknown handlers")
	}
}

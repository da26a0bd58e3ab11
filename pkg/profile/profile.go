// Package profile maps abstract power features to the concrete ACPI methods
// of one IdeaPad hardware family.
package profile

import "fmt"

// FeatureState is the result of querying a feature. Firmware can reply with
// values the decoder does not recognize, so Unknown is a first-class state,
// never coerced to Enabled or Disabled.
type FeatureState int

const (
	// StateUnknown means the hardware reply matched neither sentinel.
	StateUnknown FeatureState = iota
	// StateEnabled means the feature is on.
	StateEnabled
	// StateDisabled means the feature is off.
	StateDisabled
)

func (s FeatureState) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Feature identifies one controllable aspect of the firmware.
type Feature int

const (
	// BatteryConservation caps the battery charge level (usually at 60%)
	// to reduce wear when running off the wall most of the time.
	BatteryConservation Feature = iota
	// RapidCharge makes the firmware charge the battery faster.
	RapidCharge
	// SystemPerformance selects a CPU/fan preset.
	SystemPerformance
)

func (f Feature) String() string {
	switch f {
	case BatteryConservation:
		return "battery conservation"
	case RapidCharge:
		return "rapid charge"
	case SystemPerformance:
		return "system performance"
	default:
		return "unrecognised"
	}
}

// Operation is one abstract action on a feature.
type Operation int

const (
	OpQuery Operation = iota
	OpEnable
	OpDisable
	OpSetMode
)

func (o Operation) String() string {
	switch o {
	case OpQuery:
		return "query"
	case OpEnable:
		return "enable"
	case OpDisable:
		return "disable"
	case OpSetMode:
		return "set-mode"
	default:
		return "unrecognised"
	}
}

// Descriptor is one resolved control code: the ACPI method to invoke and its
// argument, if the operation takes one.
type Descriptor struct {
	Method string
	Arg    uint32
	HasArg bool
}

// BatteryFeature holds the control codes of either battery conservation or
// rapid charge. Both are toggled through the shared Battery.SetMethod; only
// the arguments and the status method differ.
type BatteryFeature struct {
	GetMethod  string
	EnableArg  uint32
	DisableArg uint32

	// Status reply sentinels. Anything else decodes to StateUnknown.
	OnValue  uint32
	OffValue uint32
}

// Decode turns a raw status reply into a tri-state. It is total: every input
// maps to exactly one state.
func (f BatteryFeature) Decode(raw uint32) FeatureState {
	switch raw {
	case f.OnValue:
		return StateEnabled
	case f.OffValue:
		return StateDisabled
	default:
		return StateUnknown
	}
}

// Battery groups the battery-related control codes of one hardware family.
type Battery struct {
	SetMethod    string
	Conservation BatteryFeature
	RapidCharge  BatteryFeature
}

// Mode is a system performance preset.
type Mode int

const (
	// ModeIntelligentCooling balances fan speed and performance dynamically.
	ModeIntelligentCooling Mode = iota
	// ModeExtremePerformance prioritizes performance, allowing higher
	// temperature and fan speed.
	ModeExtremePerformance
	// ModeBatterySaving lowers fan speed and performance for battery life.
	ModeBatterySaving
)

func (m Mode) String() string {
	switch m {
	case ModeIntelligentCooling:
		return "intelligent-cooling"
	case ModeExtremePerformance:
		return "extreme-performance"
	case ModeBatterySaving:
		return "battery-saving"
	default:
		return "unrecognised"
	}
}

// ParseMode parses the string form produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "intelligent-cooling":
		return ModeIntelligentCooling, nil
	case "extreme-performance":
		return ModeExtremePerformance, nil
	case "battery-saving":
		return ModeBatterySaving, nil
	default:
		return 0, fmt.Errorf("unknown performance mode %q", s)
	}
}

// ModeValues holds one uint32 per performance preset.
type ModeValues struct {
	IntelligentCooling uint32
	ExtremePerformance uint32
	BatterySaving      uint32
}

// For returns the value of the given preset.
func (v ModeValues) For(m Mode) uint32 {
	switch m {
	case ModeExtremePerformance:
		return v.ExtremePerformance
	case ModeBatterySaving:
		return v.BatterySaving
	default:
		return v.IntelligentCooling
	}
}

// Mode returns the preset a raw bit value corresponds to.
func (v ModeValues) Mode(raw uint32) (Mode, bool) {
	switch raw {
	case v.IntelligentCooling:
		return ModeIntelligentCooling, true
	case v.ExtremePerformance:
		return ModeExtremePerformance, true
	case v.BatterySaving:
		return ModeBatterySaving, true
	default:
		return 0, false
	}
}

// Performance holds the system performance control codes of one hardware
// family. The current mode is reported through two status bits (SPMO and
// FCMO) which must agree.
type Performance struct {
	SetMethod  string
	SPMOMethod string
	FCMOMethod string

	// SetArgs are the arguments of SetMethod, per preset.
	SetArgs ModeValues
	// Bits are the values the SPMO/FCMO methods report, per preset.
	Bits ModeValues
}

// Profile binds the abstract feature operations to the concrete control
// codes of one IdeaPad hardware family.
//
// Using a profile on hardware it was not written for may invoke undefined
// firmware behavior. Nothing here validates that the machine actually
// implements the methods a profile claims; that risk sits with whoever
// supplies the profile.
type Profile struct {
	// Name identifies the profile.
	Name string
	// ProductNames are the DMI product names this profile supports, used
	// for auto-detection.
	ProductNames []string

	Battery     Battery
	Performance Performance
}

// Resolve returns the control code of one (feature, operation) pair. It
// fails with ErrOperationNotSupported when the profile does not declare the
// capability; this is a configuration error, distinct from the hardware
// rejecting a method at call time.
func (p *Profile) Resolve(f Feature, op Operation) (Descriptor, error) {
	var d Descriptor

	switch f {
	case BatteryConservation, RapidCharge:
		bf := p.Battery.Conservation
		if f == RapidCharge {
			bf = p.Battery.RapidCharge
		}
		switch op {
		case OpQuery:
			d = Descriptor{Method: bf.GetMethod}
		case OpEnable:
			d = Descriptor{Method: p.Battery.SetMethod, Arg: bf.EnableArg, HasArg: true}
		case OpDisable:
			d = Descriptor{Method: p.Battery.SetMethod, Arg: bf.DisableArg, HasArg: true}
		}
	case SystemPerformance:
		switch op {
		case OpSetMode:
			d = Descriptor{Method: p.Performance.SetMethod}
		case OpQuery:
			d = Descriptor{Method: p.Performance.SPMOMethod}
		}
	}

	if d.Method == "" {
		return Descriptor{}, fmt.Errorf("%w: %s %s in profile %s", ErrOperationNotSupported, op, f, p.Name)
	}

	return d, nil
}

// DecodeState applies a feature's decoding rule to a raw reply. It is total
// and side-effect free: an unrecognized reply is valid data, not an error,
// and decodes to StateUnknown. SystemPerformance has no tri-state and always
// decodes to StateUnknown; use DecodeMode for it.
func (p *Profile) DecodeState(f Feature, raw uint32) FeatureState {
	switch f {
	case BatteryConservation:
		return p.Battery.Conservation.Decode(raw)
	case RapidCharge:
		return p.Battery.RapidCharge.Decode(raw)
	default:
		return StateUnknown
	}
}

// DecodeMode turns a raw SPMO/FCMO bit into a performance preset.
func (p *Profile) DecodeMode(raw uint32) (Mode, bool) {
	return p.Performance.Bits.Mode(raw)
}

package power

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/profile"
)

// FeatureController drives battery conservation or rapid charge. The two
// features are mutually exclusive; every enable path except EnableUnchecked
// goes through a conflict handler (see Handler).
type FeatureController struct {
	m       *Manager
	feature profile.Feature
	peer    profile.Feature
}

// Feature returns the feature this controller drives.
func (c *FeatureController) Feature() profile.Feature {
	return c.feature
}

// State queries the feature. The result is a tri-state: callers must handle
// StateUnknown explicitly, it is a valid reply, not an error.
func (c *FeatureController) State() (profile.FeatureState, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.query()
}

// Enabled reports whether the feature is confirmed enabled. Both Enabled and
// Disabled are false when the state is unknown.
func (c *FeatureController) Enabled() (bool, error) {
	st, err := c.State()
	return st == profile.StateEnabled, err
}

// Disabled reports whether the feature is confirmed disabled.
func (c *FeatureController) Disabled() (bool, error) {
	st, err := c.State()
	return st == profile.StateDisabled, err
}

// Enable enables the feature with DefaultHandler.
func (c *FeatureController) Enable() error {
	return c.EnableWithHandler(DefaultHandler)
}

// EnableStrict enables the feature with HandlerError.
func (c *FeatureController) EnableStrict() error {
	return c.EnableWithHandler(HandlerError)
}

// EnableIgnore enables the feature with HandlerIgnore.
func (c *FeatureController) EnableIgnore() error {
	return c.EnableWithHandler(HandlerIgnore)
}

// EnableWithHandler enables the feature, resolving a conflict with the
// mutually exclusive feature according to the handler. The whole sequence
// (peer query, optional peer disable, enable) runs under the manager lock.
//
// An unknown peer state is treated as "not confirmed enabled" and the enable
// proceeds regardless of handler. The decoder cannot always tell; refusing
// to act on ambiguity would make the enable path unusable on firmware with
// unrecognized status values.
func (c *FeatureController) EnableWithHandler(h Handler) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	if h == HandlerIgnore {
		return c.set(profile.OpEnable)
	}

	peer := &FeatureController{m: c.m, feature: c.peer, peer: c.feature}
	st, err := peer.query()
	if err != nil {
		return err
	}

	if st != profile.StateEnabled {
		return c.set(profile.OpEnable)
	}

	switch h {
	case HandlerSwitch:
		logrus.Debugf("%s is enabled, switching it off before enabling %s", c.peer, c.feature)
		// Fail-stop: if this disable fails, the enable is never attempted
		// and the original state is left untouched.
		if err := peer.set(profile.OpDisable); err != nil {
			return err
		}
		return c.set(profile.OpEnable)
	case HandlerError:
		return fmt.Errorf("%w: %s", ErrConflict, c.peer)
	default:
		return fmt.Errorf("unknown conflict handler %d", h)
	}
}

// EnableUnchecked performs the enable hardware call unconditionally,
// bypassing conflict resolution. Both mutually exclusive features may end up
// enabled; be careful.
func (c *FeatureController) EnableUnchecked() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.set(profile.OpEnable)
}

// Disable disables the feature. Disabling is conflict-free.
func (c *FeatureController) Disable() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.set(profile.OpDisable)
}

// query performs a single status call. Callers hold the manager lock.
func (c *FeatureController) query() (profile.FeatureState, error) {
	d, err := c.m.profile.Resolve(c.feature, profile.OpQuery)
	if err != nil {
		return profile.StateUnknown, err
	}

	raw, err := c.m.acpi.Call(d.Method)
	if err != nil {
		return profile.StateUnknown, err
	}

	return c.m.profile.DecodeState(c.feature, raw), nil
}

// set performs a single enable or disable call. Callers hold the manager
// lock.
func (c *FeatureController) set(op profile.Operation) error {
	d, err := c.m.profile.Resolve(c.feature, op)
	if err != nil {
		return err
	}

	if _, err := c.m.acpi.Call(d.Method, d.Arg); err != nil {
		return fmt.Errorf("failed to %s %s: %w", op, c.feature, err)
	}

	logrus.Debugf("%s: %s", c.feature, op)

	return nil
}

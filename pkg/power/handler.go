package power

import "fmt"

// Handler decides what happens when enabling battery conservation or rapid
// charge while the other one is confirmed enabled. The two are mutually
// exclusive: rapid charging keeps pushing current while a charge cap blocks
// it, which strains the hardware.
type Handler int

const (
	// HandlerSwitch disables the conflicting feature first, then enables
	// the requested one. The two hardware calls are not atomic; if the
	// disable fails the enable is never attempted.
	HandlerSwitch Handler = iota

	// HandlerIgnore enables the requested feature regardless. Both features
	// may end up enabled in firmware; the caller accepts that risk.
	HandlerIgnore

	// HandlerError makes no hardware call at all and returns ErrConflict.
	HandlerError
)

// DefaultHandler is used by Enable.
const DefaultHandler = HandlerSwitch

func (h Handler) String() string {
	switch h {
	case HandlerSwitch:
		return "switch"
	case HandlerIgnore:
		return "ignore"
	case HandlerError:
		return "error"
	default:
		return "unrecognised"
	}
}

// ParseHandler parses the string form produced by Handler.String.
func ParseHandler(s string) (Handler, error) {
	switch s {
	case "switch", "":
		return HandlerSwitch, nil
	case "ignore":
		return HandlerIgnore, nil
	case "error":
		return HandlerError, nil
	default:
		return 0, fmt.Errorf("unknown conflict handler %q", s)
	}
}

// Package acpicall is a basic wrapper for the acpi_call kernel module.
//
// Support is intentionally minimal: there is no verification of methods, the
// only supported argument type is uint32, and the only reply considered valid
// is an integer. Whatever method you ask for is forwarded to firmware as-is,
// even if it does not exist or does something destructive.
package acpicall

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPath is where acpi_call exposes its interface.
const DefaultPath = "/proc/acpi/call"

// Caller performs a single ACPI method call and returns the raw integer
// reply. Implementations do no locking; callers serialize multi-call
// sequences themselves.
type Caller interface {
	Call(method string, args ...uint32) (uint32, error)
}

// Proc is a Caller backed by the acpi_call procfs file.
type Proc struct {
	path string
}

// New returns a Proc using DefaultPath.
func New() *Proc {
	return &Proc{path: DefaultPath}
}

// NewWithPath returns a Proc using a custom procfs path.
func NewWithPath(path string) *Proc {
	return &Proc{path: path}
}

// Call writes the method (plus optional decimal arguments) to the acpi_call
// file and reads the reply back from the same file.
func (p *Proc) Call(method string, args ...uint32) (uint32, error) {
	if method == "" {
		return 0, fmt.Errorf("%w: empty method", ErrCallFailed)
	}

	cmd := method
	for _, a := range args {
		cmd += " " + strconv.FormatUint(uint64(a), 10)
	}

	logrus.Tracef("acpi_call: writing %q", cmd)

	if err := os.WriteFile(p.path, []byte(cmd), 0o200); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %v", ErrModuleNotLoaded, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrCallFailed, err)
	}

	b, err := os.ReadFile(p.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCallFailed, err)
	}

	v, err := parseReply(string(b), method)
	if err != nil {
		return 0, err
	}

	logrus.Tracef("acpi_call: %s returned %#x", method, v)

	return v, nil
}

// aeNotFound is the ACPICA status acpi_call reports for a missing method.
const aeNotFound = "AE_NOT_FOUND"

func parseReply(reply, method string) (uint32, error) {
	reply = strings.TrimRight(reply, "\x00\n")

	if prefix, msg, ok := strings.Cut(reply, ": "); ok && prefix == "Error" {
		if msg == aeNotFound {
			return 0, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
		}
		return 0, fmt.Errorf("%w: %s", ErrCallFailed, msg)
	}

	var (
		v   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(reply, "0x"); ok {
		v, err = strconv.ParseUint(hex, 16, 32)
	} else {
		v, err = strconv.ParseUint(reply, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: unsupported reply %q", ErrCallFailed, reply)
	}

	return uint32(v), nil
}

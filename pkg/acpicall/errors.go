package acpicall

import "errors"

var (
	// ErrModuleNotLoaded is returned when /proc/acpi/call does not exist,
	// i.e. the acpi_call kernel module is not loaded.
	ErrModuleNotLoaded = errors.New("acpi_call kernel module not loaded")

	// ErrMethodNotFound is returned when the ACPI method does not exist in
	// the ACPI table of the running machine. This usually means the selected
	// profile does not match the actual hardware.
	ErrMethodNotFound = errors.New("method not found in acpi table")

	// ErrCallFailed is returned for any other failure reported by acpi_call,
	// including replies that cannot be parsed as an integer.
	ErrCallFailed = errors.New("acpi_call failed")
)

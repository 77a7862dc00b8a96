package device

import "errors"

// Validation error kinds. Callers match with errors.Is.
var (
	// ErrInvalidLayer indicates a layer with a non-positive thickness or
	// bandgap, or negative doping.
	ErrInvalidLayer = errors.New("invalid layer")

	// ErrInvalidDevice indicates an empty layer stack, a duplicate layer
	// name, or a non-positive temperature.
	ErrInvalidDevice = errors.New("invalid device")
)

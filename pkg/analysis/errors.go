package analysis

import "errors"

// Metric derivation error kinds. A failed derivation reports exactly one of
// these; callers match with errors.Is to tell a physically degenerate device
// (no crossing, degenerate curve) from an incomplete request (missing
// irradiance).
var (
	// ErrNoZeroCrossing indicates the J-V curve never enters the
	// photovoltaic quadrant over the sweep domain, so Voc is undefined.
	ErrNoZeroCrossing = errors.New("no zero crossing in J-V curve")

	// ErrDegenerateCurve indicates Voc or Jsc is zero or negative, so the
	// fill factor is undefined.
	ErrDegenerateCurve = errors.New("degenerate J-V curve")

	// ErrMissingIrradiance indicates the incident power density was absent
	// or non-positive, so the efficiency is undefined.
	ErrMissingIrradiance = errors.New("missing incident irradiance")
)

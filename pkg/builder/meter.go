package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/meter"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Meter accumulates run and registry counters.
type Meter = types.Meter

// NewMeter constructs a Meter with the known counters pre-registered.
func NewMeter(options ...types.Option[types.Meter]) Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(logger...)
}

// MeterWithComponentName sets the meter's display name.
func MeterWithComponentName(name string) types.Option[types.Meter] {
	return meter.WithComponentName(name)
}

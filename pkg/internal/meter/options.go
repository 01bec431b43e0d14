package meter

import "github.com/spectralsuite/peaks/pkg/internal/types"

// WithLogger creates an option to add a logger to a Meter.
func WithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		if c, ok := m.(*Meter); ok {
			c.ConnectLogger(logger...)
		}
	}
}

// WithComponentName sets the meter's display name in component metadata.
func WithComponentName(name string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, m.GetComponentMetadata().ID)
	}
}

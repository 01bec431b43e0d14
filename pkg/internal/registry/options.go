package registry

import "github.com/spectralsuite/peaks/pkg/internal/types"

// WithLogger creates an option to add a logger to a Registry.
func WithLogger(logger ...types.Logger) types.Option[types.Registry] {
	return func(r types.Registry) {
		r.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Registry.
func WithSensor(sensor ...types.Sensor) types.Option[types.Registry] {
	return func(r types.Registry) {
		r.ConnectSensor(sensor...)
	}
}

// WithComponentName sets the registry's display name in component metadata.
func WithComponentName(name string) types.Option[types.Registry] {
	return func(r types.Registry) {
		r.SetComponentMetadata(name, r.GetComponentMetadata().ID)
	}
}

// WithQueueCapacity sizes the ingestion queue's channel stage. Submissions beyond it
// spill to the overflow list rather than block.
func WithQueueCapacity(capacity int) types.Option[types.Registry] {
	return func(r types.Registry) {
		if c, ok := r.(*Registry); ok && capacity > 0 {
			c.queue = newIngestQueue(capacity)
		}
	}
}

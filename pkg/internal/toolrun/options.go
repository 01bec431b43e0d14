package toolrun

import "github.com/spectralsuite/peaks/pkg/internal/types"

// WithLogger creates an option to add a logger to a Run.
func WithLogger(logger ...types.Logger) types.Option[types.ToolRun] {
	return func(r types.ToolRun) {
		r.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Run.
func WithSensor(sensor ...types.Sensor) types.Option[types.ToolRun] {
	return func(r types.ToolRun) {
		r.ConnectSensor(sensor...)
	}
}

// WithComponentName sets the run's display name in component metadata.
func WithComponentName(name string) types.Option[types.ToolRun] {
	return func(r types.ToolRun) {
		r.SetComponentMetadata(name, r.GetComponentMetadata().ID)
	}
}

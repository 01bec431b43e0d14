package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/registry"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Registry is the in-memory trace store fed by an ingestion queue.
type Registry = types.Registry

// ErrUnknownTrace reports a lookup against an id the registry does not hold.
var ErrUnknownTrace = registry.ErrUnknownTrace

// DefaultDrainInterval is the consumer tick used when Start receives no interval.
const DefaultDrainInterval = registry.DefaultDrainInterval

// NewRegistry constructs a registry with an empty arena and ingestion queue.
func NewRegistry(options ...types.Option[types.Registry]) Registry {
	return registry.NewRegistry(options...)
}

// RegistryWithLogger adds a logger to the Registry.
func RegistryWithLogger(logger ...types.Logger) types.Option[types.Registry] {
	return registry.WithLogger(logger...)
}

// RegistryWithSensor attaches sensors to the Registry.
func RegistryWithSensor(sensor ...types.Sensor) types.Option[types.Registry] {
	return registry.WithSensor(sensor...)
}

// RegistryWithComponentName sets the registry's display name.
func RegistryWithComponentName(name string) types.Option[types.Registry] {
	return registry.WithComponentName(name)
}

// RegistryWithQueueCapacity sizes the ingestion queue's channel stage.
func RegistryWithQueueCapacity(capacity int) types.Option[types.Registry] {
	return registry.WithQueueCapacity(capacity)
}

package peakfit

import "github.com/spectralsuite/peaks/pkg/internal/types"

// ModelWithName sets the model's display name.
func ModelWithName(name string) types.Option[*GaussModel] {
	return func(m *GaussModel) {
		m.name = name
	}
}

// ModelWithComponentName overrides the component metadata name used in logs.
func ModelWithComponentName(name string) types.Option[*GaussModel] {
	return func(m *GaussModel) {
		m.componentMetadata.Name = name
	}
}

package spectrum

import "github.com/spectralsuite/peaks/pkg/internal/types"

// WithName sets the display name.
func WithName(name string) types.Option[*Spectrum] {
	return func(s *Spectrum) {
		s.name = name
	}
}

// WithXUnit sets the domain axis unit label.
func WithXUnit(unit string) types.Option[*Spectrum] {
	return func(s *Spectrum) {
		s.xUnit = unit
	}
}

// WithYUnit sets the signal axis unit label.
func WithYUnit(unit string) types.Option[*Spectrum] {
	return func(s *Spectrum) {
		s.yUnit = unit
	}
}

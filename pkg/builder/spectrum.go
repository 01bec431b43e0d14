package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Spectrum is the immutable sampled-data trace.
type Spectrum = spectrum.Spectrum

// Sentinel errors surfaced by spectrum construction and history replay.
var (
	ErrShape   = spectrum.ErrShape
	ErrHistory = spectrum.ErrHistory
)

// NewSpectrum builds a Spectrum from a domain and signal sequence.
func NewSpectrum(x, y []float64, options ...types.Option[*spectrum.Spectrum]) (*Spectrum, error) {
	return spectrum.FromArrays(x, y, options...)
}

// SpectrumWithName sets the display name.
func SpectrumWithName(name string) types.Option[*spectrum.Spectrum] {
	return spectrum.WithName(name)
}

// SpectrumWithXUnit sets the domain unit label.
func SpectrumWithXUnit(unit string) types.Option[*spectrum.Spectrum] {
	return spectrum.WithXUnit(unit)
}

// SpectrumWithYUnit sets the signal unit label.
func SpectrumWithYUnit(unit string) types.Option[*spectrum.Spectrum] {
	return spectrum.WithYUnit(unit)
}

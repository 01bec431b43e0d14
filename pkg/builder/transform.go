package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/transform"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ErrBadTransformParams reports transform parameters outside the accepted range.
var ErrBadTransformParams = transform.ErrBadParams

// Apply runs one recorded operation against a spectrum.
func Apply(s *spectrum.Spectrum, entry types.HistoryEntry) (*spectrum.Spectrum, error) {
	return transform.Apply(s, entry)
}

// Replay folds a donor spectrum's recorded history onto an independent base.
func Replay(base, donor *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return transform.Replay(base, donor)
}

// Rescale maps the signal linearly onto [min, max].
func Rescale(s *spectrum.Spectrum, min, max float64) (*spectrum.Spectrum, error) {
	return transform.Rescale(s, min, max)
}

// ToAbsorbance converts a transmittance signal to absorbance.
func ToAbsorbance(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return transform.ToAbsorbance(s)
}

// ToTransmittance converts an absorbance signal to transmittance.
func ToTransmittance(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return transform.ToTransmittance(s)
}

// BoxcarSmooth smooths the signal with a moving average.
func BoxcarSmooth(s *spectrum.Spectrum, window int) (*spectrum.Spectrum, error) {
	return transform.BoxcarSmooth(s, window)
}

// TriangularSmooth smooths the signal with a triangular window.
func TriangularSmooth(s *spectrum.Spectrum, window int) (*spectrum.Spectrum, error) {
	return transform.TriangularSmooth(s, window)
}

// GaussianSmooth smooths the signal with a Gaussian window.
func GaussianSmooth(s *spectrum.Spectrum, window int, sigma float64) (*spectrum.Spectrum, error) {
	return transform.GaussianSmooth(s, window, sigma)
}

// SavGolSmooth smooths the signal with a Savitzky-Golay filter.
func SavGolSmooth(s *spectrum.Spectrum, window, polyorder int) (*spectrum.Spectrum, error) {
	return transform.SavGolSmooth(s, window, polyorder)
}

// PolynomialBaseline subtracts a fitted polynomial baseline.
func PolynomialBaseline(s *spectrum.Spectrum, lower, upper float64, degree int, invert bool) (*spectrum.Spectrum, error) {
	return transform.PolynomialBaseline(s, lower, upper, degree, invert)
}

// ShiftX offsets the domain by a constant.
func ShiftX(s *spectrum.Spectrum, offset float64) (*spectrum.Spectrum, error) {
	return transform.ShiftX(s, offset)
}

// ScaleX multiplies the domain by a constant.
func ScaleX(s *spectrum.Spectrum, factor float64) (*spectrum.Spectrum, error) {
	return transform.ScaleX(s, factor)
}

// Rename produces a copy carrying a new display name, recorded in provenance.
func Rename(s *spectrum.Spectrum, name string) (*spectrum.Spectrum, error) {
	return transform.Rename(s, name)
}

package transform

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// rescaleFunc linearly maps the signal so its minimum and maximum land on
// Params.Min/Params.Max. A constant signal maps uniformly to Params.Min.
func rescaleFunc(y []float64, p types.OpParams) ([]float64, error) {
	if p.Min >= p.Max {
		return nil, badParams("rescale min %v must be below max %v", p.Min, p.Max)
	}
	if len(y) == 0 {
		return y, nil
	}

	lo, hi := floats.Min(y), floats.Max(y)
	span := hi - lo
	for i, v := range y {
		if span == 0 {
			y[i] = p.Min
			continue
		}
		y[i] = p.Min + (v-lo)/span*(p.Max-p.Min)
	}
	return y, nil
}

// toAbsorbanceFunc converts a transmittance signal to absorbance: A = log10(1/T).
func toAbsorbanceFunc(y []float64, _ types.OpParams) ([]float64, error) {
	for i, v := range y {
		y[i] = math.Log10(1 / v)
	}
	return y, nil
}

// toTransmittanceFunc converts an absorbance signal to transmittance: T = 10^(-A).
func toTransmittanceFunc(y []float64, _ types.OpParams) ([]float64, error) {
	for i, v := range y {
		y[i] = math.Pow(10, -v)
	}
	return y, nil
}

// shiftXFunc adds a constant offset to the domain.
func shiftXFunc(x []float64, p types.OpParams) ([]float64, error) {
	for i := range x {
		x[i] += p.Offset
	}
	return x, nil
}

// scaleXFunc multiplies the domain by a constant, for unit conversion.
func scaleXFunc(x []float64, p types.OpParams) ([]float64, error) {
	if p.Factor == 0 {
		return nil, badParams("scale factor must be nonzero")
	}
	for i := range x {
		x[i] *= p.Factor
	}
	return x, nil
}

func renameFunc(s *spectrum.Spectrum, p types.OpParams) (*spectrum.Spectrum, error) {
	if p.Name == "" {
		return nil, badParams("rename requires a non-empty name")
	}
	s.SetLabel(p.Name)
	return s, nil
}

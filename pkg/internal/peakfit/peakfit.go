// Package peakfit implements multi-component Gaussian modeling of spectra: a stateless
// peak-detection heuristic that proposes an initial parameter guess from a spectrum's
// second derivative, and a bounded nonlinear least-squares fit that tunes those
// parameters against the signal.
//
// All models are represented as a sum of Gaussian components evaluated over the bound
// spectrum's domain. Parameters travel as a flat vector of (amplitude, center, width)
// triples, so a K-component model carries 3K values.
package peakfit

import (
	"math"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// GaussModel is a fitted (or tunable) sum of Gaussian components over a spectrum's
// domain. It references the spectrum it targets; it never copies the data.
type GaussModel struct {
	id       int
	name     string
	spectrum *spectrum.Spectrum

	params    []float64
	predicted []float64
	fitted    bool
	report    FitReport

	// schemaOrder maps display position (components ordered by center) to the index of
	// the component's triple in params. Rebuilt whenever params change.
	schemaOrder []int

	componentMetadata types.ComponentMetadata
}

// FitReport records what the solver did. Completion is always treated as a usable fit;
// Converged distinguishes a clean stop from an iteration-capped one for diagnostics.
type FitReport struct {
	Iterations int
	Residual   float64
	Converged  bool
}

// NewGaussModel binds a model to the spectrum it will fit.
func NewGaussModel(spec *spectrum.Spectrum, options ...types.Option[*GaussModel]) *GaussModel {
	m := &GaussModel{
		spectrum: spec,
		name:     "gauss",
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "GAUSSMODEL",
		},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Gaussian evaluates one component a*exp(-(x-mu)^2 / (2 sigma^2)) at x. A component with
// non-positive width contributes nothing.
func Gaussian(x, a, mu, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	d := x - mu
	return a * math.Exp(-d*d/(2*sigma*sigma))
}

// Evaluate sums every (a, mu, sigma) triple in params over the domain x.
func Evaluate(params, x []float64) []float64 {
	out := make([]float64, len(x))
	for i := 0; i+2 < len(params); i += 3 {
		a, mu, sigma := params[i], params[i+1], params[i+2]
		for j, v := range x {
			out[j] += Gaussian(v, a, mu, sigma)
		}
	}
	return out
}

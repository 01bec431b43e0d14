package builder

import (
	"github.com/spectralsuite/peaks/pkg/internal/peakfit"
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// GaussModel is a sum of Gaussian components fitted to a spectrum.
type GaussModel = peakfit.GaussModel

// Component is one Gaussian band in display form.
type Component = peakfit.Component

// DetectorConfig tunes the peak-detection heuristic.
type DetectorConfig = peakfit.DetectorConfig

// Detection is the detector's verdict.
type Detection = peakfit.Detection

// FitReport carries the solver diagnostics of a fit.
type FitReport = peakfit.FitReport

// Sentinel errors surfaced by detection and fitting.
var (
	ErrNoPeaks      = peakfit.ErrNoPeaks
	ErrNotFitted    = peakfit.ErrNotFitted
	ErrBadFitParams = peakfit.ErrBadParams
)

// NewGaussModel binds a model to the spectrum it will fit.
func NewGaussModel(spec *spectrum.Spectrum, options ...types.Option[*peakfit.GaussModel]) *GaussModel {
	return peakfit.NewGaussModel(spec, options...)
}

// DetectPeaks proposes Gaussian starting parameters for a spectrum.
func DetectPeaks(s *spectrum.Spectrum, cfg peakfit.DetectorConfig) (Detection, error) {
	return peakfit.Detect(s, cfg)
}

// EvaluateGaussians sums (amplitude, center, width) triples over a domain.
func EvaluateGaussians(params, x []float64) []float64 {
	return peakfit.Evaluate(params, x)
}

// GaussModelWithName sets the model's display name.
func GaussModelWithName(name string) types.Option[*peakfit.GaussModel] {
	return peakfit.ModelWithName(name)
}

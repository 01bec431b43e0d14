package toolrun

import (
	"context"
	"io"

	"github.com/spectralsuite/peaks/pkg/internal/loader"
	"github.com/spectralsuite/peaks/pkg/internal/peakfit"
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/transform"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// NewLoadRun builds a run that parses delimited text into a Spectrum and submits it.
func NewLoadRun(name string, src io.Reader, cfg loader.Config, out types.Submitter, options ...types.Option[types.ToolRun]) *Run {
	return NewRun(name, func(ctx context.Context, run *Run) error {
		s, err := loader.Load(src, cfg)
		if err != nil {
			return err
		}
		return out.Submit(s)
	}, options...)
}

// NewTransformRun builds a run that applies a sequence of recorded operations to an
// already-resolved source spectrum and submits the result. The source is resolved by the
// consumer before the run launches; workers never read the registry.
func NewTransformRun(name string, src *spectrum.Spectrum, entries []types.HistoryEntry, out types.Submitter, options ...types.Option[types.ToolRun]) *Run {
	return NewRun(name, func(ctx context.Context, run *Run) error {
		cur := src
		for _, entry := range entries {
			next, err := transform.Apply(cur, entry)
			if err != nil {
				return err
			}
			cur = next
		}
		return out.Submit(cur)
	}, options...)
}

// NewFitRun builds a run that detects peaks on the source spectrum, fits a Gaussian
// model from the detected guess, and submits the model. A detection shortfall against
// cfg.MinPeaks is reported through the sensors and the fit proceeds with what was found.
func NewFitRun(name string, src *spectrum.Spectrum, cfg peakfit.DetectorConfig, out types.Submitter, options ...types.Option[types.ToolRun]) *Run {
	return NewRun(name, func(ctx context.Context, run *Run) error {
		det, err := peakfit.Detect(src, cfg)
		if err != nil {
			return err
		}
		if det.Insufficient {
			run.notifyDetectionShortfall(det.Found, cfg.MinPeaks)
		}

		model := peakfit.NewGaussModel(src, peakfit.ModelWithName(name))
		if _, err := model.Fit(det.Params); err != nil {
			return err
		}
		return out.Submit(model)
	}, options...)
}

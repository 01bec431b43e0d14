package builder

import (
	"io"

	"github.com/spectralsuite/peaks/pkg/internal/loader"
	"github.com/spectralsuite/peaks/pkg/internal/peakfit"
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/toolrun"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ToolRun wraps one worker-thread tool invocation.
type ToolRun = types.ToolRun

// NewLoadRun builds a run that parses delimited text into a Spectrum and submits it.
func NewLoadRun(name string, src io.Reader, cfg loader.Config, out types.Submitter, options ...types.Option[types.ToolRun]) ToolRun {
	return toolrun.NewLoadRun(name, src, cfg, out, options...)
}

// NewTransformRun builds a run that applies recorded operations to a resolved spectrum
// and submits the result.
func NewTransformRun(name string, src *spectrum.Spectrum, entries []types.HistoryEntry, out types.Submitter, options ...types.Option[types.ToolRun]) ToolRun {
	return toolrun.NewTransformRun(name, src, entries, out, options...)
}

// NewFitRun builds a run that detects peaks, fits a Gaussian model, and submits it.
func NewFitRun(name string, src *spectrum.Spectrum, cfg peakfit.DetectorConfig, out types.Submitter, options ...types.Option[types.ToolRun]) ToolRun {
	return toolrun.NewFitRun(name, src, cfg, out, options...)
}

// ToolRunWithLogger adds a logger to the run.
func ToolRunWithLogger(logger ...types.Logger) types.Option[types.ToolRun] {
	return toolrun.WithLogger(logger...)
}

// ToolRunWithSensor attaches sensors to the run.
func ToolRunWithSensor(sensor ...types.Sensor) types.Option[types.ToolRun] {
	return toolrun.WithSensor(sensor...)
}

// ToolRunWithComponentName sets the run's display name in component metadata.
func ToolRunWithComponentName(name string) types.Option[types.ToolRun] {
	return toolrun.WithComponentName(name)
}

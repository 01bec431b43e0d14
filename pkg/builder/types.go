// Package builder is the public facade of the toolkit. It re-exports the internal
// constructors, options, and types so applications depend on one import path.
package builder

import "github.com/spectralsuite/peaks/pkg/internal/types"

// ComponentMetadata identifies a component in logs and telemetry.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component at construction time.
type Option[T any] = types.Option[T]

// Trace is anything plottable held by a registry.
type Trace = types.Trace

// TraceKind discriminates the registered trace variants.
type TraceKind = types.TraceKind

const (
	KindSpectrum = types.KindSpectrum
	KindModel    = types.KindModel
)

// HistoryEntry is one recorded transform operation.
type HistoryEntry = types.HistoryEntry

// HistoryKind selects the dispatch family of a history entry.
type HistoryKind = types.HistoryKind

const (
	HistorySpec     = types.HistorySpec
	HistoryFreq     = types.HistoryFreq
	HistorySpecFreq = types.HistorySpecFreq
	HistoryObject   = types.HistoryObject
)

// OpKind names a registered transform operation.
type OpKind = types.OpKind

const (
	OpRescale            = types.OpRescale
	OpToAbsorbance       = types.OpToAbsorbance
	OpToTransmittance    = types.OpToTransmittance
	OpBoxcarSmooth       = types.OpBoxcarSmooth
	OpTriangularSmooth   = types.OpTriangularSmooth
	OpGaussianSmooth     = types.OpGaussianSmooth
	OpSavGolSmooth       = types.OpSavGolSmooth
	OpPolynomialBaseline = types.OpPolynomialBaseline
	OpShiftX             = types.OpShiftX
	OpScaleX             = types.OpScaleX
	OpRename             = types.OpRename
)

// OpParams carries the serializable parameters of a history entry.
type OpParams = types.OpParams

// Submitter is the producer-side half of the registry.
type Submitter = types.Submitter

// RunStatus tracks a tool run's lifecycle.
type RunStatus = types.RunStatus

const (
	RunPending   = types.RunPending
	RunRunning   = types.RunRunning
	RunSucceeded = types.RunSucceeded
	RunFailed    = types.RunFailed
)

// Metric names tracked by the meter component.
const (
	MetricRunsStarted      = types.MetricRunsStarted
	MetricRunsSucceeded    = types.MetricRunsSucceeded
	MetricRunsFailed       = types.MetricRunsFailed
	MetricTracesRegistered = types.MetricTracesRegistered
	MetricTracesRemoved    = types.MetricTracesRemoved
)

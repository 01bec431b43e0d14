package types

// Metric names tracked by the meter component.
const (
	MetricRunsStarted      = "runs_started"
	MetricRunsSucceeded    = "runs_succeeded"
	MetricRunsFailed       = "runs_failed"
	MetricTracesRegistered = "traces_registered"
	MetricTracesRemoved    = "traces_removed"
)

// Meter accumulates run and registry counters and renders them, together with a process
// resource snapshot, into a one-line status summary.
type Meter interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	IncrementCount(metric string)
	GetCount(metric string) uint64
	StatusLine() string
}

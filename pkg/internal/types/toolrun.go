package types

import "context"

// RunStatus tracks a tool run through its lifecycle.
type RunStatus int32

const (
	RunPending RunStatus = iota
	RunRunning
	RunSucceeded
	RunFailed
)

func (s RunStatus) String() string {
	switch s {
	case RunPending:
		return "Pending"
	case RunRunning:
		return "Running"
	case RunSucceeded:
		return "Succeeded"
	case RunFailed:
		return "Failed"
	}
	return "Unknown"
}

// ToolRun wraps one worker-thread invocation of a tool (load, transform, fit). The
// wrapper owns fault capture: a run that errors or panics records the fault and reports
// status instead of propagating into the consumer loop. Result traces are posted to the
// registry's ingestion queue, never registered directly.
type ToolRun interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)

	Launch(ctx context.Context)
	Wait()
	Status() RunStatus
	StatusLog() []string
}

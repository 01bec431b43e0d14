package types

import (
	"context"
	"time"
)

// Registry is the in-memory store of all live traces, fed by an ingestion queue that
// decouples producer worker threads from the single consumer that owns registration.
//
// Submit may be called concurrently from any goroutine. PollOnce and every query or
// mutation method must only be called from the one designated consumer; id assignment
// relies on that discipline instead of a lock.
type Registry interface {
	Submitter

	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)

	PollOnce() (Trace, bool)
	GetByID(id int) (Trace, error)
	Delete(id int) error
	ListByKind(kind TraceKind) []Trace
	UniqueName(base string) string
	Len() int
	Pending() int

	Start(ctx context.Context, interval time.Duration) error
	Stop() error
	IsStarted() bool
}

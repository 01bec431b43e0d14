// Package toolrun wraps single worker-thread tool invocations. A run owns fault
// capture: errors and panics inside the work function are recorded on the run's status
// log and reported through sensors, never propagated to the caller or the registry
// consumer. Result traces always travel through the registry's ingestion queue.
package toolrun

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// Run is the concrete ToolRun. The zero status is Pending; Launch moves it to Running
// and exactly one of Succeeded or Failed is reached afterwards.
type Run struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	name string
	work func(ctx context.Context, run *Run) error

	status int32

	logLock   sync.Mutex
	statusLog []string

	launchOnce sync.Once
	done       chan struct{}

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewRun wraps a work function. The concrete constructors in this package build the
// work for loading, transforming, and fitting; custom tools can wrap their own.
func NewRun(name string, work func(ctx context.Context, run *Run) error, options ...types.Option[types.ToolRun]) *Run {
	r := &Run{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TOOLRUN",
		},
		name: name,
		work: work,
		done: make(chan struct{}),
	}
	r.appendStatus(types.RunPending.String())

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Name returns the run's display name.
func (r *Run) Name() string { return r.name }

// Launch starts the work on its own goroutine. Launching twice is a no-op.
func (r *Run) Launch(ctx context.Context) {
	r.launchOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		r.setStatus(types.RunRunning, types.RunRunning.String())
		r.notifyRunStart()

		go func() {
			defer close(r.done)
			defer func() {
				if rec := recover(); rec != nil {
					r.fail(fmt.Errorf("panic: %v", rec))
				}
			}()

			if err := r.work(ctx, r); err != nil {
				r.fail(err)
				return
			}
			r.setStatus(types.RunSucceeded, types.RunSucceeded.String())
			r.notifyRunComplete()
		}()
	})
}

// Wait blocks until a launched run finishes. Waiting on a run that was never launched
// returns immediately.
func (r *Run) Wait() {
	if r.Status() == types.RunPending {
		return
	}
	<-r.done
}

// Status returns the run's current lifecycle state.
func (r *Run) Status() types.RunStatus {
	return types.RunStatus(atomic.LoadInt32(&r.status))
}

// StatusLog returns the appended status texts, oldest first.
func (r *Run) StatusLog() []string {
	r.logLock.Lock()
	defer r.logLock.Unlock()
	return append([]string(nil), r.statusLog...)
}

func (r *Run) fail(err error) {
	r.setStatus(types.RunFailed, fmt.Sprintf("%s: %v", types.RunFailed, err))
	r.notifyRunError(err)
}

func (r *Run) setStatus(status types.RunStatus, text string) {
	atomic.StoreInt32(&r.status, int32(status))
	r.appendStatus(text)
	r.notifyStatusChanged(text)
}

func (r *Run) appendStatus(text string) {
	r.logLock.Lock()
	r.statusLog = append(r.statusLog, text)
	r.logLock.Unlock()
}

func (r *Run) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

func (r *Run) SetComponentMetadata(name string, id string) {
	r.metadataLock.Lock()
	r.componentMetadata.Name = name
	r.componentMetadata.ID = id
	r.metadataLock.Unlock()
}

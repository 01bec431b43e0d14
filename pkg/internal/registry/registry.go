// Package registry implements the in-memory trace store and the ingestion queue feeding
// it. Producer workers submit finished traces from any goroutine; one consumer drains
// the queue, assigns ids, and owns every registration and removal.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// ErrUnknownTrace reports a lookup or removal against an id the registry never assigned
// or has already removed.
var ErrUnknownTrace = errors.New("unknown trace id")

// ErrNilTrace reports a nil submission.
var ErrNilTrace = errors.New("nil trace submitted")

// DefaultDrainInterval is the consumer tick used when Start receives no interval.
const DefaultDrainInterval = 500 * time.Millisecond

const defaultQueueCapacity = 64

// Registry stores registered traces keyed by their assigned id and preserves the
// registration order for listing.
type Registry struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	queue *ingestQueue

	arenaLock sync.Mutex
	traces    map[int]types.Trace
	order     []int
	nextID    int

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started int32
}

// NewRegistry constructs a registry with an empty arena and ingestion queue.
func NewRegistry(options ...types.Option[types.Registry]) types.Registry {
	r := &Registry{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "REGISTRY",
		},
		queue:  newIngestQueue(defaultQueueCapacity),
		traces: make(map[int]types.Trace),
		nextID: 1,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Submit enqueues a finished trace for registration. Safe for concurrent producers and
// never blocks.
func (r *Registry) Submit(trace types.Trace) error {
	if trace == nil {
		return ErrNilTrace
	}
	r.queue.push(trace)
	r.notifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: Submit, trace: %s => Trace enqueued", r.componentMetadata.ID, trace.Label())
	return nil
}

// PollOnce dequeues at most one pending trace, assigns it the next id, registers it, and
// fires OnTraceRegistered. It returns (nil, false) when nothing is pending.
//
// Consumer-side only: id assignment depends on PollOnce never running concurrently with
// itself or with any other mutation.
func (r *Registry) PollOnce() (types.Trace, bool) {
	trace, ok := r.queue.pop()
	if !ok {
		return nil, false
	}

	r.arenaLock.Lock()
	id := r.nextID
	r.nextID++
	if _, exists := r.traces[id]; exists {
		r.arenaLock.Unlock()
		// Ids are handed out once by the single consumer; a collision means that
		// discipline is broken and the arena can no longer be trusted.
		panic(fmt.Sprintf("registry: id %d already registered", id))
	}
	trace.SetID(id)
	r.traces[id] = trace
	r.order = append(r.order, id)
	r.arenaLock.Unlock()

	r.notifyTraceRegistered(trace)
	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: PollOnce, trace: %d => Trace registered", r.componentMetadata.ID, id)
	return trace, true
}

// GetByID returns the registered trace with the given id.
func (r *Registry) GetByID(id int) (types.Trace, error) {
	r.arenaLock.Lock()
	defer r.arenaLock.Unlock()
	t, ok := r.traces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrace, id)
	}
	return t, nil
}

// Delete removes a trace from the arena. Observers are notified before the removal so a
// subscriber can still resolve the id. The id is never reused.
func (r *Registry) Delete(id int) error {
	r.arenaLock.Lock()
	_, ok := r.traces[id]
	r.arenaLock.Unlock()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTrace, id)
	}

	r.notifyTraceRemoved(id)

	r.arenaLock.Lock()
	delete(r.traces, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.arenaLock.Unlock()

	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Delete, trace: %d => Trace removed", r.componentMetadata.ID, id)
	return nil
}

// ListByKind returns the registered traces of one kind in registration order.
func (r *Registry) ListByKind(kind types.TraceKind) []types.Trace {
	r.arenaLock.Lock()
	defer r.arenaLock.Unlock()
	var out []types.Trace
	for _, id := range r.order {
		if t := r.traces[id]; t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// UniqueName returns base, or base with the lowest numeric suffix that no registered
// trace currently uses as its label.
func (r *Registry) UniqueName(base string) string {
	r.arenaLock.Lock()
	defer r.arenaLock.Unlock()

	inUse := func(name string) bool {
		for _, t := range r.traces {
			if t.Label() == name {
				return true
			}
		}
		return false
	}

	if !inUse(base) {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s-%d", base, i)
		if !inUse(name) {
			return name
		}
	}
}

// Len returns the number of registered traces.
func (r *Registry) Len() int {
	r.arenaLock.Lock()
	defer r.arenaLock.Unlock()
	return len(r.traces)
}

// Pending returns the number of submitted traces not yet registered.
func (r *Registry) Pending() int {
	return r.queue.size()
}

// Start launches the consumer loop, draining one pending trace per tick. A zero interval
// selects DefaultDrainInterval.
func (r *Registry) Start(ctx context.Context, interval time.Duration) error {
	if !atomic.CompareAndSwapInt32(&r.started, 0, 1) {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		atomic.StoreInt32(&r.started, 0)
		return err
	}
	if interval <= 0 {
		interval = DefaultDrainInterval
	}

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Start, interval: %s => Consumer loop started", r.componentMetadata.ID, interval)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ticker.C:
				r.PollOnce()
			}
		}
	}()

	return nil
}

// Stop cancels the consumer loop and waits for it to exit.
func (r *Registry) Stop() error {
	if !atomic.CompareAndSwapInt32(&r.started, 1, 0) {
		return nil
	}
	r.cancel()
	r.wg.Wait()
	r.notifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Stop => Consumer loop stopped", r.componentMetadata.ID)
	return nil
}

// IsStarted reports whether the consumer loop is running.
func (r *Registry) IsStarted() bool {
	return atomic.LoadInt32(&r.started) == 1
}

func (r *Registry) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

func (r *Registry) SetComponentMetadata(name string, id string) {
	r.metadataLock.Lock()
	r.componentMetadata.Name = name
	r.componentMetadata.ID = id
	r.metadataLock.Unlock()
}

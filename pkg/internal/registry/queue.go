package registry

import (
	"sync"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// ingestQueue is the unbounded FIFO between producer workers and the registry's single
// consumer. Pushes land on a buffered channel while there is room and spill to an
// overflow list otherwise, so a submit never blocks a worker.
type ingestQueue struct {
	ch       chan types.Trace
	mu       sync.Mutex
	overflow []types.Trace
}

func newIngestQueue(capacity int) *ingestQueue {
	return &ingestQueue{ch: make(chan types.Trace, capacity)}
}

func (q *ingestQueue) push(t types.Trace) {
	q.mu.Lock()
	defer q.mu.Unlock()
	// Once anything sits in the overflow, later pushes must queue behind it to keep
	// arrival order.
	if len(q.overflow) == 0 {
		select {
		case q.ch <- t:
			return
		default:
		}
	}
	q.overflow = append(q.overflow, t)
}

// pop removes the oldest pending trace. Single-consumer only.
func (q *ingestQueue) pop() (types.Trace, bool) {
	select {
	case t := <-q.ch:
		q.refill()
		return t, true
	default:
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.overflow) > 0 {
		t := q.overflow[0]
		q.overflow = q.overflow[1:]
		return t, true
	}
	return nil, false
}

// refill moves spilled traces back onto the channel while there is room.
func (q *ingestQueue) refill() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.overflow) > 0 {
		select {
		case q.ch <- q.overflow[0]:
			q.overflow = q.overflow[1:]
		default:
			return
		}
	}
}

func (q *ingestQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ch) + len(q.overflow)
}

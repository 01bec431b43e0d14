// Package meter implements the counter component that tracks run and registry totals
// and renders them, alongside a process resource snapshot, as a one-line status summary.
package meter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/spectralsuite/peaks/pkg/internal/types"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

type Meter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	counts     map[string]*uint64
	countsLock sync.Mutex

	startTime time.Time

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter constructs a Meter with the known metric counters pre-registered.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:    make(map[string]*uint64),
		startTime: time.Now(),
	}

	for _, name := range []string{
		types.MetricRunsStarted,
		types.MetricRunsSucceeded,
		types.MetricRunsFailed,
		types.MetricTracesRegistered,
		types.MetricTracesRemoved,
	} {
		m.counts[name] = new(uint64)
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// IncrementCount adds one to the named counter, registering it on first use.
func (m *Meter) IncrementCount(metric string) {
	atomic.AddUint64(m.counter(metric), 1)
}

// GetCount returns the current value of the named counter.
func (m *Meter) GetCount(metric string) uint64 {
	return atomic.LoadUint64(m.counter(metric))
}

func (m *Meter) counter(metric string) *uint64 {
	m.countsLock.Lock()
	defer m.countsLock.Unlock()
	c, ok := m.counts[metric]
	if !ok {
		c = new(uint64)
		m.counts[metric] = c
	}
	return c
}

func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *Meter) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
	m.metadataLock.Unlock()
}

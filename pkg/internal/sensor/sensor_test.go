package sensor

import (
	"errors"
	"sync"
	"testing"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

type countingMeter struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func newCountingMeter() *countingMeter {
	return &countingMeter{counts: make(map[string]uint64)}
}

func (m *countingMeter) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}

func (m *countingMeter) SetComponentMetadata(name string, id string) {}

func (m *countingMeter) StatusLine() string { return "" }

func (m *countingMeter) IncrementCount(metric string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[metric]++
}

func (m *countingMeter) GetCount(metric string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[metric]
}

type fakeTrace struct{ id int }

func (f *fakeTrace) ID() int                                  { return f.id }
func (f *fakeTrace) SetID(id int)                             { f.id = id }
func (f *fakeTrace) XData() []float64                         { return nil }
func (f *fakeTrace) YData() []float64                         { return nil }
func (f *fakeTrace) Label() string                            { return "fake" }
func (f *fakeTrace) Bounds() (xmin, xmax, ymin, ymax float64) { return 0, 0, 0, 0 }
func (f *fakeTrace) Kind() types.TraceKind                    { return types.KindSpectrum }

func TestSensorCallbacks(t *testing.T) {
	var registered, removed, started, completed, failed, warned int
	var lastErr error

	s := NewSensor(
		WithOnTraceRegisteredFunc(func(c types.ComponentMetadata, trace types.Trace) { registered++ }),
		WithOnTraceRemovedFunc(func(c types.ComponentMetadata, id int) { removed++ }),
		WithOnToolRunStartFunc(func(c types.ComponentMetadata, name string) { started++ }),
		WithOnToolRunCompleteFunc(func(c types.ComponentMetadata, name string) { completed++ }),
		WithOnToolRunErrorFunc(func(c types.ComponentMetadata, name string, err error) {
			failed++
			lastErr = err
		}),
		WithOnPeakDetectionWarningFunc(func(c types.ComponentMetadata, found, minimum int) { warned++ }),
	)

	meta := s.GetComponentMetadata()
	s.InvokeOnTraceRegistered(meta, &fakeTrace{id: 1})
	s.InvokeOnTraceRegistered(meta, &fakeTrace{id: 2})
	s.InvokeOnTraceRemoved(meta, 1)
	s.InvokeOnToolRunStart(meta, "fit")
	s.InvokeOnToolRunComplete(meta, "fit")
	s.InvokeOnToolRunError(meta, "load", errors.New("parse failed: bad row"))
	s.InvokeOnPeakDetectionWarning(meta, 1, 3)

	if registered != 2 || removed != 1 {
		t.Errorf("trace callbacks: registered=%d removed=%d", registered, removed)
	}
	if started != 1 || completed != 1 || failed != 1 {
		t.Errorf("run callbacks: started=%d completed=%d failed=%d", started, completed, failed)
	}
	if warned != 1 {
		t.Errorf("Expected one detection warning, got %d", warned)
	}
	if lastErr == nil {
		t.Errorf("Expected the error callback to receive the run error")
	}
}

func TestSensorDrivesMeterCounters(t *testing.T) {
	m := newCountingMeter()
	s := NewSensor(WithMeter(m))

	meta := s.GetComponentMetadata()
	s.InvokeOnTraceRegistered(meta, &fakeTrace{id: 1})
	s.InvokeOnToolRunStart(meta, "fit")
	s.InvokeOnToolRunComplete(meta, "fit")
	s.InvokeOnToolRunStart(meta, "load")
	s.InvokeOnToolRunError(meta, "load", errors.New("parse failed: bad row"))
	s.InvokeOnTraceRemoved(meta, 1)

	checks := map[string]uint64{
		types.MetricTracesRegistered: 1,
		types.MetricTracesRemoved:    1,
		types.MetricRunsStarted:      2,
		types.MetricRunsSucceeded:    1,
		types.MetricRunsFailed:       1,
	}
	for metric, want := range checks {
		if got := m.GetCount(metric); got != want {
			t.Errorf("Expected %s to be %d, got %d", metric, want, got)
		}
	}
}

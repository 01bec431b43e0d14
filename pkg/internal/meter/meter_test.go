package meter

import (
	"strings"
	"sync"
	"testing"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

func TestMeterCounts(t *testing.T) {
	m := NewMeter()

	m.IncrementCount(types.MetricRunsStarted)
	m.IncrementCount(types.MetricRunsStarted)
	m.IncrementCount(types.MetricRunsSucceeded)

	if got := m.GetCount(types.MetricRunsStarted); got != 2 {
		t.Errorf("Expected runs_started to be 2, got %d", got)
	}
	if got := m.GetCount(types.MetricRunsSucceeded); got != 1 {
		t.Errorf("Expected runs_succeeded to be 1, got %d", got)
	}
	if got := m.GetCount(types.MetricRunsFailed); got != 0 {
		t.Errorf("Expected runs_failed to be 0, got %d", got)
	}
}

func TestMeterConcurrentIncrements(t *testing.T) {
	m := NewMeter()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.IncrementCount(types.MetricTracesRegistered)
			}
		}()
	}
	wg.Wait()

	if got := m.GetCount(types.MetricTracesRegistered); got != 8000 {
		t.Errorf("Expected 8000 increments, got %d", got)
	}
}

func TestMeterUnknownMetricRegistersOnUse(t *testing.T) {
	m := NewMeter()

	if got := m.GetCount("custom_metric"); got != 0 {
		t.Errorf("Expected unseen metric to read 0, got %d", got)
	}
	m.IncrementCount("custom_metric")
	if got := m.GetCount("custom_metric"); got != 1 {
		t.Errorf("Expected custom metric to be 1, got %d", got)
	}
}

func TestStatusLineCarriesCounters(t *testing.T) {
	m := NewMeter()
	m.IncrementCount(types.MetricRunsStarted)

	line := m.StatusLine()
	if !strings.Contains(line, "runs: 1 started") {
		t.Errorf("Status line missing run counter: %q", line)
	}
	if !strings.Contains(line, "goroutines:") {
		t.Errorf("Status line missing resource snapshot: %q", line)
	}
}

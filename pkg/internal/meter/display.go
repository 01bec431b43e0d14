package meter

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// StatusLine renders the counters plus a process resource snapshot. The CPU sample
// averages over a short interval, so a call blocks for about half a second.
func (m *Meter) StatusLine() string {
	elapsed := time.Since(m.startTime).Round(time.Second)

	cpuPercentages, _ := cpu.Percent(time.Millisecond*500, false)
	memStats, _ := mem.VirtualMemory()

	cpuPct := 0.0
	if len(cpuPercentages) > 0 {
		cpuPct = cpuPercentages[0]
	}
	ramPct := 0.0
	if memStats != nil {
		ramPct = memStats.UsedPercent
	}

	return fmt.Sprintf(
		"elapsed: %s, runs: %d started / %d succeeded / %d failed, traces: %d registered / %d removed, goroutines: %d, cpu: %.2f%%, ram: %.2f%%",
		elapsed,
		m.GetCount(types.MetricRunsStarted),
		m.GetCount(types.MetricRunsSucceeded),
		m.GetCount(types.MetricRunsFailed),
		m.GetCount(types.MetricTracesRegistered),
		m.GetCount(types.MetricTracesRemoved),
		runtime.NumGoroutine(),
		cpuPct,
		ramPct,
	)
}

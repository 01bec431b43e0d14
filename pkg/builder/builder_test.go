package builder_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/spectralsuite/peaks/pkg/builder"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func gaussianText() string {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		x := float64(i) * 100.0 / 99.0
		d := x - 24
		y := 2 * math.Exp(-d*d/50)
		fmt.Fprintf(&b, "%f\t%f\n", x, y)
	}
	return b.String()
}

func TestLoadTransformFitPipeline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	meter := builder.NewMeter()
	sensor := builder.NewSensor(builder.SensorWithMeter(meter))

	registry := builder.NewRegistry(
		builder.RegistryWithSensor(sensor),
		builder.RegistryWithComponentName("session"),
	)
	if err := registry.Start(ctx, 5*time.Millisecond); err != nil {
		t.Fatalf("registry Start failed: %v", err)
	}
	defer registry.Stop()

	// Stage 1: load the raw spectrum off a worker.
	load := builder.NewLoadRun(
		"load sample",
		strings.NewReader(gaussianText()),
		builder.LoaderConfig{SpecCol: 1, Name: "sample"},
		registry,
		builder.ToolRunWithSensor(sensor),
	)
	load.Launch(ctx)
	load.Wait()
	if load.Status() != builder.RunSucceeded {
		t.Fatalf("load run: %s %v", load.Status(), load.StatusLog())
	}

	waitFor(t, 5*time.Second, func() bool { return registry.Len() == 1 })

	spectra := registry.ListByKind(builder.KindSpectrum)
	raw, ok := spectra[0].(*builder.Spectrum)
	if !ok {
		t.Fatalf("expected a *Spectrum, got %T", spectra[0])
	}

	// Stage 2: normalize it.
	normalize := builder.NewTransformRun(
		"normalize",
		raw,
		[]builder.HistoryEntry{
			{Kind: builder.HistorySpec, Op: builder.OpRescale, Params: builder.OpParams{Min: 0, Max: 2}},
			{Kind: builder.HistoryObject, Op: builder.OpRename, Params: builder.OpParams{Name: "normalized"}},
		},
		registry,
		builder.ToolRunWithSensor(sensor),
	)
	normalize.Launch(ctx)
	normalize.Wait()
	if normalize.Status() != builder.RunSucceeded {
		t.Fatalf("transform run: %s %v", normalize.Status(), normalize.StatusLog())
	}

	waitFor(t, 5*time.Second, func() bool { return registry.Len() == 2 })

	// Stage 3: fit the normalized spectrum.
	var fitted *builder.Spectrum
	for _, tr := range registry.ListByKind(builder.KindSpectrum) {
		if tr.Label() == "normalized" {
			fitted = tr.(*builder.Spectrum)
		}
	}
	if fitted == nil {
		t.Fatalf("normalized spectrum not registered")
	}

	fit := builder.NewFitRun(
		"fit",
		fitted,
		builder.DetectorConfig{},
		registry,
		builder.ToolRunWithSensor(sensor),
	)
	fit.Launch(ctx)
	fit.Wait()
	if fit.Status() != builder.RunSucceeded {
		t.Fatalf("fit run: %s %v", fit.Status(), fit.StatusLog())
	}

	waitFor(t, 5*time.Second, func() bool { return len(registry.ListByKind(builder.KindModel)) == 1 })

	model := registry.ListByKind(builder.KindModel)[0].(*builder.GaussModel)
	comps, err := model.Schema()
	if err != nil {
		t.Fatalf("Schema failed: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("expected one fitted band, got %d", len(comps))
	}
	if comps[0].Center < 23 || comps[0].Center > 25 {
		t.Errorf("fitted center %v, want near 24", comps[0].Center)
	}

	// The sensor kept the meter current across the whole pipeline.
	if got := meter.GetCount(builder.MetricRunsStarted); got != 3 {
		t.Errorf("expected 3 runs started, got %d", got)
	}
	if got := meter.GetCount(builder.MetricRunsSucceeded); got != 3 {
		t.Errorf("expected 3 runs succeeded, got %d", got)
	}
	if got := meter.GetCount(builder.MetricTracesRegistered); got != 3 {
		t.Errorf("expected 3 traces registered, got %d", got)
	}
}

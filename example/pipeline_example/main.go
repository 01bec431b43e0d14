package main

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spectralsuite/peaks/pkg/builder"
)

// Render a noiseless Gaussian band as tab-separated text, the shape a spectrometer
// export usually takes.
func sampleData() string {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		x := float64(i) * 100.0 / 99.0
		d := x - 24
		fmt.Fprintf(&b, "%f\t%f\n", x, 2*math.Exp(-d*d/50))
	}
	return b.String()
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	meter := builder.NewMeter()

	sensor := builder.NewSensor(
		builder.SensorWithMeter(meter),
		builder.SensorWithOnTraceRegisteredFunc(func(c builder.ComponentMetadata, trace builder.Trace) {
			fmt.Printf("registered %s #%d (%s)\n", trace.Kind(), trace.ID(), trace.Label())
		}),
	)

	registry := builder.NewRegistry(
		builder.RegistryWithLogger(logger),
		builder.RegistryWithSensor(sensor),
		builder.RegistryWithComponentName("session"),
	)
	registry.Start(ctx, 50*time.Millisecond)
	defer registry.Stop()

	load := builder.NewLoadRun(
		"load sample",
		strings.NewReader(sampleData()),
		builder.LoaderConfig{SpecCol: 1, Name: "sample", FreqUnit: "nm"},
		registry,
		builder.ToolRunWithSensor(sensor),
	)
	load.Launch(ctx)
	load.Wait()

	for registry.Len() < 1 {
		time.Sleep(10 * time.Millisecond)
	}
	raw := registry.ListByKind(builder.KindSpectrum)[0].(*builder.Spectrum)

	fit := builder.NewFitRun("fit sample", raw, builder.DetectorConfig{}, registry,
		builder.ToolRunWithSensor(sensor))
	fit.Launch(ctx)
	fit.Wait()

	for len(registry.ListByKind(builder.KindModel)) < 1 {
		time.Sleep(10 * time.Millisecond)
	}

	model := registry.ListByKind(builder.KindModel)[0].(*builder.GaussModel)
	comps, _ := model.Schema()
	for i, c := range comps {
		fmt.Printf("band %d: amplitude %.3f center %.3f width %.3f\n", i, c.Amplitude, c.Center, c.Width)
	}
	r2, _ := model.RSquared()
	fmt.Printf("r-squared: %.6f\n", r2)

	fmt.Println(meter.StatusLine())
}

package main

import (
	"fmt"
	"log"
	"math"

	"github.com/spectralsuite/peaks/pkg/builder"
)

// Replay a recorded processing chain from one spectrum onto another. The donor carries
// the recipe; the base only needs compatible raw data.
func main() {
	x := make([]float64, 200)
	noisy := make([]float64, 200)
	clean := make([]float64, 200)
	for i := range x {
		x[i] = float64(i)
		d := x[i] - 100
		clean[i] = 5 * math.Exp(-d*d/200)
		noisy[i] = clean[i] + 0.3*math.Sin(float64(i)*1.3)
	}

	donorBase, err := builder.NewSpectrum(x, noisy, builder.SpectrumWithName("run-1"))
	if err != nil {
		log.Fatal(err)
	}

	donor, err := builder.SavGolSmooth(donorBase, 11, 3)
	if err != nil {
		log.Fatal(err)
	}
	donor, err = builder.Rescale(donor, 0, 1)
	if err != nil {
		log.Fatal(err)
	}
	donor, err = builder.Rename(donor, "run-1 processed")
	if err != nil {
		log.Fatal(err)
	}

	base, err := builder.NewSpectrum(x, clean, builder.SpectrumWithName("run-2"))
	if err != nil {
		log.Fatal(err)
	}
	replayed, err := builder.Replay(base, donor)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("donor history: %d entries\n", len(donor.History()))
	for _, entry := range replayed.History() {
		fmt.Printf("  %s/%s\n", entry.Kind, entry.Op)
	}
	_, _, ymin, ymax := replayed.Bounds()
	fmt.Printf("replayed %q signal range: [%.3f, %.3f]\n", replayed.Label(), ymin, ymax)
}

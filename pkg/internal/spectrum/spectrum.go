// Package spectrum implements the sampled-data trace at the center of the toolkit: two
// equal-length numeric sequences (domain X, signal Y), display metadata, and an ordered,
// replayable transformation history.
//
// A Spectrum is never mutated in place. Every transform produces a new Spectrum whose
// history is the source's history plus one appended entry, which is what makes a recorded
// chain deterministic to replay onto an independent base. The only post-construction
// writes are the registry-owned id assignment and the plotted display flag.
package spectrum

import (
	"gonum.org/v1/gonum/floats"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Spectrum holds sampled spectral data plus its transformation provenance.
type Spectrum struct {
	id      int
	x       []float64
	y       []float64
	name    string
	xUnit   string
	yUnit   string
	plotted bool
	bounds  [4]float64
	history []types.HistoryEntry
}

// FromArrays builds a Spectrum from a domain and signal sequence. The inputs are copied;
// callers keep ownership of their slices. Returns ErrShape when the lengths differ or
// the sequences are empty.
func FromArrays(x, y []float64, options ...types.Option[*Spectrum]) (*Spectrum, error) {
	if len(x) != len(y) || len(x) == 0 {
		return nil, shapeErr(len(x), len(y))
	}

	s := &Spectrum{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}
	s.recomputeBounds()

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// derive produces the successor Spectrum for a transform: new data, copied metadata, and
// the source's history plus one appended entry. The result is unregistered (id 0).
func (s *Spectrum) derive(x, y []float64, entry types.HistoryEntry) (*Spectrum, error) {
	if len(x) != len(y) {
		return nil, shapeErr(len(x), len(y))
	}

	next := &Spectrum{
		x:       append([]float64(nil), x...),
		y:       append([]float64(nil), y...),
		name:    s.name,
		xUnit:   s.xUnit,
		yUnit:   s.yUnit,
		history: make([]types.HistoryEntry, 0, len(s.history)+1),
	}
	next.history = append(next.history, s.history...)
	next.history = append(next.history, entry)
	next.recomputeBounds()

	return next, nil
}

func (s *Spectrum) recomputeBounds() {
	if len(s.x) == 0 {
		s.bounds = [4]float64{}
		return
	}
	s.bounds = [4]float64{
		floats.Min(s.x), floats.Max(s.x),
		floats.Min(s.y), floats.Max(s.y),
	}
}

package spectrum

import (
	"fmt"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// SpecFunc transforms the signal only; the domain is unchanged.
type SpecFunc func(y []float64, p types.OpParams) ([]float64, error)

// FreqFunc transforms the domain only; the signal is unchanged.
type FreqFunc func(x []float64, p types.OpParams) ([]float64, error)

// SpecFreqFunc transforms domain and signal together, for operations whose signal change
// depends on position (region-bounded baseline subtraction, for example).
type SpecFreqFunc func(x, y []float64, p types.OpParams) ([]float64, []float64, error)

// ObjectFunc receives a freshly derived Spectrum (history already appended) and returns
// the full replacement. It is the escape hatch for metadata-level edits.
type ObjectFunc func(s *Spectrum, p types.OpParams) (*Spectrum, error)

// Resolver maps a recorded operation identifier to the function implementing it, one
// lookup per history kind. The transform package provides the canonical closed table.
type Resolver interface {
	ResolveSpec(op types.OpKind) (SpecFunc, bool)
	ResolveFreq(op types.OpKind) (FreqFunc, bool)
	ResolveSpecFreq(op types.OpKind) (SpecFreqFunc, bool)
	ResolveObject(op types.OpKind) (ObjectFunc, bool)
}

// ApplySpec computes newY = fn(Y, params) and returns a new Spectrum recording the entry.
// The receiver is never observably changed.
func (s *Spectrum) ApplySpec(entry types.HistoryEntry, fn SpecFunc) (*Spectrum, error) {
	newY, err := fn(append([]float64(nil), s.y...), entry.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Op, err)
	}
	return s.derive(s.x, newY, entry)
}

// ApplyFreq is the domain-side counterpart of ApplySpec.
func (s *Spectrum) ApplyFreq(entry types.HistoryEntry, fn FreqFunc) (*Spectrum, error) {
	newX, err := fn(append([]float64(nil), s.x...), entry.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Op, err)
	}
	return s.derive(newX, s.y, entry)
}

// ApplySpecFreq hands both sequences to fn and records the entry on the result.
func (s *Spectrum) ApplySpecFreq(entry types.HistoryEntry, fn SpecFreqFunc) (*Spectrum, error) {
	newX, newY, err := fn(
		append([]float64(nil), s.x...),
		append([]float64(nil), s.y...),
		entry.Params,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Op, err)
	}
	return s.derive(newX, newY, entry)
}

// ApplyObject derives a successor with the entry appended and lets fn produce the full
// replacement from it.
func (s *Spectrum) ApplyObject(entry types.HistoryEntry, fn ObjectFunc) (*Spectrum, error) {
	next, err := s.derive(s.x, s.y, entry)
	if err != nil {
		return nil, err
	}
	out, err := fn(next, entry.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Op, err)
	}
	return out, nil
}

// ApplyHistory replays donor's recorded entries, in original order, onto the receiver.
// Each entry is dispatched by kind through the resolver. The replayed chain reproduces
// the same relative operation sequence because every registered transform is
// deterministic.
func (s *Spectrum) ApplyHistory(donor *Spectrum, resolver Resolver) (*Spectrum, error) {
	cur := s
	for i, entry := range donor.History() {
		var (
			next *Spectrum
			err  error
		)
		switch entry.Kind {
		case types.HistorySpec:
			fn, ok := resolver.ResolveSpec(entry.Op)
			if !ok {
				return nil, historyErr(i, entry)
			}
			next, err = cur.ApplySpec(entry, fn)
		case types.HistoryFreq:
			fn, ok := resolver.ResolveFreq(entry.Op)
			if !ok {
				return nil, historyErr(i, entry)
			}
			next, err = cur.ApplyFreq(entry, fn)
		case types.HistorySpecFreq:
			fn, ok := resolver.ResolveSpecFreq(entry.Op)
			if !ok {
				return nil, historyErr(i, entry)
			}
			next, err = cur.ApplySpecFreq(entry, fn)
		case types.HistoryObject:
			fn, ok := resolver.ResolveObject(entry.Op)
			if !ok {
				return nil, historyErr(i, entry)
			}
			next, err = cur.ApplyObject(entry, fn)
		default:
			return nil, historyErr(i, entry)
		}
		if err != nil {
			return nil, fmt.Errorf("replay entry %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

func historyErr(index int, entry types.HistoryEntry) error {
	return fmt.Errorf("%w: entry %d kind=%s op=%s", ErrHistory, index, entry.Kind, entry.Op)
}

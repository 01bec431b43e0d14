package transform

import (
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Apply runs one recorded entry against s through the canonical table. Unregistered
// operations surface as spectrum.ErrHistory, same as during a replay.
func Apply(s *spectrum.Spectrum, entry types.HistoryEntry) (*spectrum.Spectrum, error) {
	t := NewTable()
	switch entry.Kind {
	case types.HistorySpec:
		if fn, ok := t.ResolveSpec(entry.Op); ok {
			return s.ApplySpec(entry, fn)
		}
	case types.HistoryFreq:
		if fn, ok := t.ResolveFreq(entry.Op); ok {
			return s.ApplyFreq(entry, fn)
		}
	case types.HistorySpecFreq:
		if fn, ok := t.ResolveSpecFreq(entry.Op); ok {
			return s.ApplySpecFreq(entry, fn)
		}
	case types.HistoryObject:
		if fn, ok := t.ResolveObject(entry.Op); ok {
			return s.ApplyObject(entry, fn)
		}
	}
	return nil, badEntry(entry)
}

func badEntry(entry types.HistoryEntry) error {
	return historyEntryError{entry: entry}
}

type historyEntryError struct {
	entry types.HistoryEntry
}

func (e historyEntryError) Error() string {
	return "unregistered operation " + string(e.entry.Op) + " for kind " + e.entry.Kind.String()
}

func (e historyEntryError) Unwrap() error { return spectrum.ErrHistory }

// Rescale maps the signal linearly onto [min, max].
func Rescale(s *spectrum.Spectrum, min, max float64) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpec,
		Op:     types.OpRescale,
		Params: types.OpParams{Min: min, Max: max},
	})
}

// ToAbsorbance converts a transmittance signal to absorbance.
func ToAbsorbance(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{Kind: types.HistorySpec, Op: types.OpToAbsorbance})
}

// ToTransmittance converts an absorbance signal to transmittance.
func ToTransmittance(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{Kind: types.HistorySpec, Op: types.OpToTransmittance})
}

// BoxcarSmooth smooths the signal with a moving average of window points.
func BoxcarSmooth(s *spectrum.Spectrum, window int) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpec,
		Op:     types.OpBoxcarSmooth,
		Params: types.OpParams{Window: window},
	})
}

// TriangularSmooth smooths the signal with a triangular window of window points.
func TriangularSmooth(s *spectrum.Spectrum, window int) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpec,
		Op:     types.OpTriangularSmooth,
		Params: types.OpParams{Window: window},
	})
}

// GaussianSmooth smooths the signal with a Gaussian window.
func GaussianSmooth(s *spectrum.Spectrum, window int, sigma float64) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpec,
		Op:     types.OpGaussianSmooth,
		Params: types.OpParams{Window: window, Sigma: sigma},
	})
}

// SavGolSmooth smooths the signal with a Savitzky-Golay filter.
func SavGolSmooth(s *spectrum.Spectrum, window, polyorder int) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpec,
		Op:     types.OpSavGolSmooth,
		Params: types.OpParams{Window: window, PolyOrder: polyorder},
	})
}

// PolynomialBaseline subtracts a polynomial fit over the x region (lower, upper); with
// invert set, the fit uses samples outside the region instead.
func PolynomialBaseline(s *spectrum.Spectrum, lower, upper float64, degree int, invert bool) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistorySpecFreq,
		Op:     types.OpPolynomialBaseline,
		Params: types.OpParams{Lower: lower, Upper: upper, Degree: degree, Invert: invert},
	})
}

// ShiftX offsets the domain by a constant.
func ShiftX(s *spectrum.Spectrum, offset float64) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistoryFreq,
		Op:     types.OpShiftX,
		Params: types.OpParams{Offset: offset},
	})
}

// ScaleX multiplies the domain by a constant, e.g. for unit conversion.
func ScaleX(s *spectrum.Spectrum, factor float64) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistoryFreq,
		Op:     types.OpScaleX,
		Params: types.OpParams{Factor: factor},
	})
}

// Rename produces a copy carrying a new display name, recorded in provenance.
func Rename(s *spectrum.Spectrum, name string) (*spectrum.Spectrum, error) {
	return Apply(s, types.HistoryEntry{
		Kind:   types.HistoryObject,
		Op:     types.OpRename,
		Params: types.OpParams{Name: name},
	})
}

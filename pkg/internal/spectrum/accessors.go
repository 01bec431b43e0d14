package spectrum

import "github.com/spectralsuite/peaks/pkg/internal/types"

// ID returns the registry-assigned identifier, or 0 while unregistered.
func (s *Spectrum) ID() int { return s.id }

// SetID assigns the registry id. Reserved for the registry's single consumer.
func (s *Spectrum) SetID(id int) { s.id = id }

// XData returns the domain sequence. Callers must treat it as read-only.
func (s *Spectrum) XData() []float64 { return s.x }

// YData returns the signal sequence. Callers must treat it as read-only.
func (s *Spectrum) YData() []float64 { return s.y }

func (s *Spectrum) Label() string { return s.name }

func (s *Spectrum) Kind() types.TraceKind { return types.KindSpectrum }

// Bounds returns the bounding box of the sampled data. Spectra are immutable, so this is
// computed once at construction.
func (s *Spectrum) Bounds() (xmin, xmax, ymin, ymax float64) {
	return s.bounds[0], s.bounds[1], s.bounds[2], s.bounds[3]
}

func (s *Spectrum) Len() int { return len(s.x) }

func (s *Spectrum) XUnit() string { return s.xUnit }
func (s *Spectrum) YUnit() string { return s.yUnit }

// Plotted reports the display flag; it carries no data semantics.
func (s *Spectrum) Plotted() bool     { return s.plotted }
func (s *Spectrum) SetPlotted(v bool) { s.plotted = v }

// SetLabel renames the spectrum. This is display metadata only; renames that should be
// part of provenance go through the rename transform instead.
func (s *Spectrum) SetLabel(name string) { s.name = name }

// History returns the recorded transform entries, oldest first. The returned slice is a
// copy; mutating it cannot corrupt provenance.
func (s *Spectrum) History() []types.HistoryEntry {
	return append([]types.HistoryEntry(nil), s.history...)
}

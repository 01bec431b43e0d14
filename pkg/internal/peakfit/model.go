package peakfit

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// Component is one Gaussian band in display form.
type Component struct {
	Amplitude float64
	Center    float64
	Width     float64
}

// Fit runs the bounded least-squares solver from the given starting parameters and
// stores the result. initial must hold one or more (amplitude, center, width) triples.
// Completion of the solver always yields a usable model; the returned report carries
// the convergence diagnostics.
func (m *GaussModel) Fit(initial []float64) (FitReport, error) {
	if len(initial) == 0 || len(initial)%3 != 0 {
		return FitReport{}, badParams("parameter vector of length %d is not a run of triples", len(initial))
	}

	params, report := solve(initial, m.spectrum.XData(), m.spectrum.YData())

	m.params = params
	m.report = report
	m.fitted = true
	m.refresh()
	return report, nil
}

// refresh recomputes the cached prediction and the center-ordered schema after any
// parameter change.
func (m *GaussModel) refresh() {
	m.predicted = Evaluate(m.params, m.spectrum.XData())

	k := len(m.params) / 3
	m.schemaOrder = make([]int, k)
	for i := range m.schemaOrder {
		m.schemaOrder[i] = i
	}
	sort.SliceStable(m.schemaOrder, func(a, b int) bool {
		return m.params[3*m.schemaOrder[a]+1] < m.params[3*m.schemaOrder[b]+1]
	})
}

// Fitted reports whether the model holds a usable parameter set.
func (m *GaussModel) Fitted() bool { return m.fitted }

// Params returns a copy of the flat parameter vector in solver order.
func (m *GaussModel) Params() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.params...), nil
}

// Report returns the diagnostics of the most recent fit.
func (m *GaussModel) Report() (FitReport, error) {
	if !m.fitted {
		return FitReport{}, ErrNotFitted
	}
	return m.report, nil
}

// Predict evaluates the fitted model over an arbitrary domain.
func (m *GaussModel) Predict(x []float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return Evaluate(m.params, x), nil
}

// RSquared returns the coefficient of determination of the fit against the bound
// spectrum's signal.
func (m *GaussModel) RSquared() (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	y := m.spectrum.YData()
	mean := floats.Sum(y) / float64(len(y))

	var ssRes, ssTot float64
	for i, v := range y {
		r := v - m.predicted[i]
		d := v - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// Schema returns the fitted components ordered by center, lowest first. The order is
// stable under ties and is the index space used by SetComponent.
func (m *GaussModel) Schema() ([]Component, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([]Component, len(m.schemaOrder))
	for i, p := range m.schemaOrder {
		out[i] = Component{
			Amplitude: m.params[3*p],
			Center:    m.params[3*p+1],
			Width:     m.params[3*p+2],
		}
	}
	return out, nil
}

// SetComponent overwrites one component, addressed by its Schema position, and refreshes
// the cached prediction. Amplitude and width are clamped to the non-negative bound the
// solver enforces; the center may move anywhere.
func (m *GaussModel) SetComponent(i int, c Component) error {
	if !m.fitted {
		return ErrNotFitted
	}
	if i < 0 || i >= len(m.schemaOrder) {
		return badParams("component index %d out of range [0, %d)", i, len(m.schemaOrder))
	}
	if c.Amplitude < 0 {
		c.Amplitude = 0
	}
	if c.Width < 0 {
		c.Width = 0
	}
	p := m.schemaOrder[i]
	m.params[3*p] = c.Amplitude
	m.params[3*p+1] = c.Center
	m.params[3*p+2] = c.Width
	m.refresh()
	return nil
}

// ID returns the registry-assigned identifier, or 0 while unregistered.
func (m *GaussModel) ID() int { return m.id }

// SetID assigns the registry id. Reserved for the registry's single consumer.
func (m *GaussModel) SetID(id int) { m.id = id }

// XData returns the bound spectrum's domain.
func (m *GaussModel) XData() []float64 { return m.spectrum.XData() }

// YData returns the cached model prediction over the bound spectrum's domain, or nil
// before the first fit.
func (m *GaussModel) YData() []float64 { return m.predicted }

func (m *GaussModel) Label() string { return m.name }

func (m *GaussModel) Kind() types.TraceKind { return types.KindModel }

// Bounds returns the bounding box of the prediction over the bound domain.
func (m *GaussModel) Bounds() (xmin, xmax, ymin, ymax float64) {
	x := m.spectrum.XData()
	if len(x) == 0 || !m.fitted {
		return 0, 0, 0, 0
	}
	return floats.Min(x), floats.Max(x), floats.Min(m.predicted), floats.Max(m.predicted)
}

// GetComponentMetadata returns the component's identity for logs.
func (m *GaussModel) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

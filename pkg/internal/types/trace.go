package types

// TraceKind is the closed set of plottable variants held by a registry.
type TraceKind int

const (
	KindSpectrum TraceKind = iota // KindSpectrum marks sampled spectral data.
	KindModel                     // KindModel marks a fitted parametric model.
)

func (k TraceKind) String() string {
	switch k {
	case KindSpectrum:
		return "spectrum"
	case KindModel:
		return "model"
	default:
		return "unknown"
	}
}

// Trace is the capability contract satisfied by anything plottable: an ordered pair of
// equal-length numeric sequences plus identity and display metadata.
//
// SetID is reserved for the registry's single consumer; it is called exactly once, at the
// moment a submission is dequeued. Everything else is read-only after construction.
type Trace interface {
	ID() int
	SetID(id int)
	XData() []float64
	YData() []float64
	Label() string
	Bounds() (xmin, xmax, ymin, ymax float64)
	Kind() TraceKind
}

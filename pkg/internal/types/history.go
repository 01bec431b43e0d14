package types

// HistoryKind is the closed set of transform-record categories a Spectrum can carry.
// It determines which apply method a recorded entry is dispatched to on replay.
type HistoryKind int

const (
	HistorySpec     HistoryKind = iota // signal-only transform: newY = f(Y)
	HistoryFreq                        // domain-only transform: newX = f(X)
	HistorySpecFreq                    // position-dependent transform: newX, newY = f(X, Y)
	HistoryObject                      // whole-object replacement, e.g. metadata edits
)

func (k HistoryKind) String() string {
	switch k {
	case HistorySpec:
		return "spec"
	case HistoryFreq:
		return "freq"
	case HistorySpecFreq:
		return "spec_freq"
	case HistoryObject:
		return "object"
	default:
		return "unknown"
	}
}

// OpKind identifies one operation in the closed transform set. History entries store
// this identifier instead of a raw callable so that a recorded chain stays replayable
// through the dispatch table.
type OpKind string

const (
	OpRescale            OpKind = "rescale"
	OpToAbsorbance       OpKind = "to_absorbance"
	OpToTransmittance    OpKind = "to_transmittance"
	OpBoxcarSmooth       OpKind = "boxcar_smooth"
	OpTriangularSmooth   OpKind = "triangular_smooth"
	OpGaussianSmooth     OpKind = "gaussian_smooth"
	OpSavGolSmooth       OpKind = "savgol_smooth"
	OpPolynomialBaseline OpKind = "polynomial_baseline"
	OpShiftX             OpKind = "shift_x"
	OpScaleX             OpKind = "scale_x"
	OpRename             OpKind = "rename"
)

// OpParams enumerates every recognized transform parameter with its zero default.
// One flat struct covers the whole closed op set; each operation documents which
// fields it reads.
type OpParams struct {
	Window    int     // smoothing window length, in samples
	PolyOrder int     // polynomial order for Savitzky-Golay smoothing
	Sigma     float64 // width of the Gaussian smoothing kernel
	Min       float64 // rescale target minimum
	Max       float64 // rescale target maximum
	Lower     float64 // lower x bound of the baseline region
	Upper     float64 // upper x bound of the baseline region
	Degree    int     // baseline polynomial degree
	Invert    bool    // fit the baseline outside the region instead of inside
	Offset    float64 // additive domain shift
	Factor    float64 // multiplicative domain scale
	Name      string  // replacement display name
}

// HistoryEntry is one recorded transform: the dispatch category, the operation
// identifier, and its serializable parameters. An ordered list of these is a
// Spectrum's full provenance; replay is a fold over the list.
type HistoryEntry struct {
	Kind   HistoryKind
	Op     OpKind
	Params OpParams
}

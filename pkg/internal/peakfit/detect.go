package peakfit

import (
	"math"
	"sort"

	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/transform"
	"github.com/spectralsuite/peaks/pkg/internal/utils"
)

// DetectorConfig tunes the initial-guess heuristic. Zero values select defaults: a
// smoothing window of a tenth of the signal (rounded up to odd), a quadratic fit, no
// minimum and no cap on the number of candidates.
type DetectorConfig struct {
	WindowLength int
	PolyOrder    int
	MinPeaks     int
	MaxPeaks     int
}

// Detection is the detector's verdict: a flat (amplitude, center, width) parameter
// vector for the strongest candidates, widest first. Insufficient flags a shortfall
// against DetectorConfig.MinPeaks; the parameters found are still returned, so callers
// decide whether a shortfall matters.
type Detection struct {
	Params       []float64
	Found        int
	Insufficient bool
}

type candidate struct {
	amplitude float64
	center    float64
	sigma     float64
}

// Detect proposes Gaussian starting parameters for s. Peaks are located as local maxima
// of the negated Savitzky-Golay second derivative, which responds to curvature rather
// than raw height and so separates overlapping bands. Each candidate's width comes from
// the derivative peak's extent at half its prominence.
func Detect(s *spectrum.Spectrum, cfg DetectorConfig) (Detection, error) {
	x, y := s.XData(), s.YData()
	n := len(x)
	if n < 3 {
		return Detection{}, badParams("signal of %d samples is too short to detect peaks", n)
	}

	delta := (x[n-1] - x[0]) / float64(n-1)
	if delta <= 0 {
		return Detection{}, badParams("domain must be increasing")
	}

	order := cfg.PolyOrder
	if order == 0 {
		order = 2
	}
	window := cfg.WindowLength
	if window == 0 {
		// A tenth of the signal, rounded up to the next odd value above the polynomial
		// order (SavGol itself rejects a window the fit cannot determine).
		window = utils.NextOddAbove(n/10, order)
	}

	d2, err := transform.SavGol(y, window, order, 2, delta)
	if err != nil {
		return Detection{}, err
	}

	curv := make([]float64, n)
	var curvMax float64
	for i, v := range d2 {
		curv[i] = -v
		if a := math.Abs(v); a > curvMax {
			curvMax = a
		}
	}
	// Floating-point jitter in flat regions produces micro-maxima; anything this far
	// below the strongest curvature is noise, not a band.
	promFloor := 1e-9 * curvMax

	var yMax float64
	for _, v := range y {
		if v > yMax {
			yMax = v
		}
	}
	// The curvature between well-separated bands bows just enough to register a maximum
	// where the signal itself is essentially zero. Such a candidate carries the widest
	// sigma of all and would outrank real bands in the sort below, so amplitudes
	// negligibly close to zero are rejected outright.
	ampFloor := 1e-6 * yMax

	var cands []candidate
	for _, idx := range localMaxima(curv) {
		left, right, prom := prominence(curv, idx)
		if prom <= promFloor {
			continue
		}
		width := widthAt(curv, idx, left, right, curv[idx]-prom/2)

		c := candidate{
			amplitude: y[idx],
			center:    x[idx],
			sigma:     width / 2 * delta,
		}
		if c.amplitude <= ampFloor || c.sigma <= 0 {
			continue
		}
		if c.center < x[0] || c.center >= x[n-1] {
			continue
		}
		cands = append(cands, c)
	}

	if len(cands) == 0 {
		return Detection{}, ErrNoPeaks
	}

	// Widest first; equal widths break on amplitude so the dominant band leads.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].sigma != cands[j].sigma {
			return cands[i].sigma > cands[j].sigma
		}
		return cands[i].amplitude > cands[j].amplitude
	})

	found := len(cands)
	if cfg.MaxPeaks > 0 && len(cands) > cfg.MaxPeaks {
		cands = cands[:cfg.MaxPeaks]
	}

	params := make([]float64, 0, 3*len(cands))
	for _, c := range cands {
		params = append(params, c.amplitude, c.center, c.sigma)
	}

	return Detection{
		Params:       params,
		Found:        found,
		Insufficient: cfg.MinPeaks > 0 && found < cfg.MinPeaks,
	}, nil
}

// localMaxima returns the indices of strict local maxima of v; a flat plateau counts
// once, at its midpoint. Endpoints never qualify.
func localMaxima(v []float64) []int {
	var peaks []int
	i := 1
	for i < len(v)-1 {
		if v[i-1] >= v[i] {
			i++
			continue
		}
		// Ahead is a run of equal samples; the peak stands if the run falls off after.
		j := i
		for j < len(v)-1 && v[j+1] == v[i] {
			j++
		}
		if j < len(v)-1 && v[j+1] < v[i] {
			peaks = append(peaks, (i+j)/2)
		}
		i = j + 1
	}
	return peaks
}

// prominence measures how far the peak at idx rises above its surroundings: the drop
// from the peak to the higher of the two lowest points separating it from taller
// terrain (or the signal edge). The returned bounds bracket the peak's own base.
func prominence(v []float64, idx int) (left, right int, prom float64) {
	h := v[idx]

	left, leftMin := 0, h
	for i := idx - 1; i >= 0; i-- {
		if v[i] > h {
			break
		}
		if v[i] < leftMin {
			leftMin, left = v[i], i
		}
	}

	right, rightMin := len(v)-1, h
	for i := idx + 1; i < len(v); i++ {
		if v[i] > h {
			break
		}
		if v[i] < rightMin {
			rightMin, right = v[i], i
		}
	}

	return left, right, h - math.Max(leftMin, rightMin)
}

// widthAt measures the peak's extent, in samples, where v crosses the given height on
// each side of idx, interpolating linearly between samples. The search stays inside the
// peak's prominence bases.
func widthAt(v []float64, idx, left, right int, height float64) float64 {
	lo := float64(left)
	for i := idx; i > left; i-- {
		if v[i-1] < height {
			lo = float64(i) - (height-v[i])/(v[i-1]-v[i])
			break
		}
	}

	hi := float64(right)
	for i := idx; i < right; i++ {
		if v[i+1] < height {
			hi = float64(i) + (height-v[i])/(v[i+1]-v[i])
			break
		}
	}

	return hi - lo
}

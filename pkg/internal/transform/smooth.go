package transform

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// boxcarFunc smooths the signal with a moving average of Params.Window points.
func boxcarFunc(y []float64, p types.OpParams) ([]float64, error) {
	if p.Window <= 0 {
		return nil, badParams("window length %d must be positive", p.Window)
	}
	win := make([]float64, p.Window)
	for i := range win {
		win[i] = 1 / float64(p.Window)
	}
	return convolveSame(y, win), nil
}

// triangularFunc smooths the signal by convolution with a normalized triangular window.
func triangularFunc(y []float64, p types.OpParams) ([]float64, error) {
	if p.Window <= 0 {
		return nil, badParams("window length %d must be positive", p.Window)
	}
	win := make([]float64, p.Window)
	mid := float64(p.Window-1) / 2
	var sum float64
	for i := range win {
		win[i] = 1 - math.Abs(float64(i)-mid)/(mid+1)
		sum += win[i]
	}
	for i := range win {
		win[i] /= sum
	}
	return convolveSame(y, win), nil
}

// gaussianFunc smooths the signal by convolution with a normalized Gaussian window of
// Params.Window points and width Params.Sigma (in samples). The convolution runs in the
// frequency domain.
func gaussianFunc(y []float64, p types.OpParams) ([]float64, error) {
	if p.Window <= 0 {
		return nil, badParams("window length %d must be positive", p.Window)
	}
	if p.Sigma <= 0 {
		return nil, badParams("sigma %v must be positive", p.Sigma)
	}

	win := make([]float64, p.Window)
	mid := float64(p.Window-1) / 2
	var sum float64
	for i := range win {
		d := float64(i) - mid
		win[i] = math.Exp(-d * d / (2 * p.Sigma * p.Sigma))
		sum += win[i]
	}
	for i := range win {
		win[i] /= sum
	}

	return fftConvolveSame(y, win), nil
}

// savgolFunc smooths the signal with a Savitzky-Golay filter of Params.Window points and
// polynomial order Params.PolyOrder.
func savgolFunc(y []float64, p types.OpParams) ([]float64, error) {
	return SavGol(y, p.Window, p.PolyOrder, 0, 1)
}

// convolveSame is a direct "same"-mode linear convolution with zero padding beyond the
// edges. Windows here are short, so the quadratic cost is irrelevant.
func convolveSame(y, win []float64) []float64 {
	n, w := len(y), len(win)
	m := w / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j := 0; j < w; j++ {
			k := i + j - m
			if k < 0 || k >= n {
				continue
			}
			acc += y[k] * win[w-1-j]
		}
		out[i] = acc
	}
	return out
}

// fftConvolveSame computes the same zero-padded "same"-mode convolution in the frequency
// domain. Both sequences are padded to the full linear-convolution length so the circular
// product equals the linear result.
func fftConvolveSame(y, win []float64) []float64 {
	n, w := len(y), len(win)
	m := w / 2
	full := n + w - 1

	a := make([]complex128, full)
	b := make([]complex128, full)
	for i, v := range y {
		a[i] = complex(v, 0)
	}
	for i, v := range win {
		b[i] = complex(v, 0)
	}

	prod := fft.Convolve(a, b)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = real(prod[i+m])
	}
	return out
}

package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SavGol runs a Savitzky-Golay filter over y: a least-squares polynomial of the given
// order is fit to every window of samples and evaluated (or differentiated, for
// deriv > 0) at the window center. delta is the sample spacing used to scale
// derivatives into domain units.
//
// Interior points use the precomputed projection weights; the first and last half-window
// evaluate the edge window's fitted polynomial directly, so the output has no startup
// transient.
func SavGol(y []float64, window, polyorder, deriv int, delta float64) ([]float64, error) {
	n := len(y)
	switch {
	case window <= 0 || window%2 == 0:
		return nil, badParams("window length %d must be positive and odd", window)
	case polyorder < 0 || polyorder >= window:
		return nil, badParams("polynomial order %d must be in [0, window)", polyorder)
	case deriv < 0 || deriv > polyorder:
		return nil, badParams("derivative order %d exceeds polynomial order %d", deriv, polyorder)
	case window > n:
		return nil, badParams("window length %d exceeds signal length %d", window, n)
	case delta <= 0:
		return nil, badParams("sample spacing %v must be positive", delta)
	}

	proj := polyProjection(window, polyorder)
	m := window / 2
	scale := factorial(deriv) / math.Pow(delta, float64(deriv))

	// Center weights: d-th derivative of the fitted polynomial at the window center.
	weights := make([]float64, window)
	for j := 0; j < window; j++ {
		weights[j] = proj.At(deriv, j) * scale
	}

	out := make([]float64, n)
	for i := m; i < n-m; i++ {
		var acc float64
		for j := 0; j < window; j++ {
			acc += weights[j] * y[i-m+j]
		}
		out[i] = acc
	}

	// Edge samples: evaluate the first/last window's polynomial at their true offsets.
	left := fitWindow(proj, y[:window])
	for i := 0; i < m; i++ {
		out[i] = evalPolyDeriv(left, float64(i-m), deriv) / math.Pow(delta, float64(deriv))
	}
	right := fitWindow(proj, y[n-window:])
	for i := n - m; i < n; i++ {
		t := float64(i - (n - 1 - m))
		out[i] = evalPolyDeriv(right, t, deriv) / math.Pow(delta, float64(deriv))
	}

	return out, nil
}

// polyProjection returns the (polyorder+1) x window least-squares projection matrix H
// with H = (A^T A)^-1 A^T for the Vandermonde design A[j][k] = (j-m)^k. Row k of H maps
// a window of samples to the k-th coefficient of its fitted polynomial.
func polyProjection(window, polyorder int) *mat.Dense {
	m := window / 2
	a := mat.NewDense(window, polyorder+1, nil)
	for j := 0; j < window; j++ {
		t := float64(j - m)
		v := 1.0
		for k := 0; k <= polyorder; k++ {
			a.Set(j, k, v)
			v *= t
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	eye := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		eye.Set(i, i, 1)
	}

	var pinv mat.Dense
	if err := qr.SolveTo(&pinv, false, eye); err != nil {
		// The Vandermonde design is full rank for polyorder < window.
		panic("savgol: rank-deficient design matrix")
	}

	return &pinv
}

// fitWindow returns the fitted polynomial coefficients for one window of samples,
// centered at the window midpoint and in units of samples.
func fitWindow(proj *mat.Dense, win []float64) []float64 {
	rows, cols := proj.Dims()
	coeffs := make([]float64, rows)
	for k := 0; k < rows; k++ {
		var acc float64
		for j := 0; j < cols; j++ {
			acc += proj.At(k, j) * win[j]
		}
		coeffs[k] = acc
	}
	return coeffs
}

// evalPolyDeriv evaluates the d-th derivative of the polynomial with the given
// coefficients at offset t (in samples from the window center).
func evalPolyDeriv(coeffs []float64, t float64, d int) float64 {
	var acc float64
	for k := d; k < len(coeffs); k++ {
		term := coeffs[k] * factorial(k) / factorial(k-d)
		acc += term * math.Pow(t, float64(k-d))
	}
	return acc
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/spectralsuite/peaks/pkg/internal/types"
)

// baselineFunc subtracts a polynomial baseline from the signal. The polynomial of
// Params.Degree is fit, by least squares, to the samples whose x lies strictly inside
// (Params.Lower, Params.Upper) — or strictly outside when Params.Invert is set — and
// evaluated over the whole domain.
func baselineFunc(x, y []float64, p types.OpParams) ([]float64, []float64, error) {
	if p.Degree < 1 {
		return nil, nil, badParams("baseline degree %d must be at least 1", p.Degree)
	}
	if p.Lower > p.Upper {
		return nil, nil, badParams("baseline region lower %v exceeds upper %v", p.Lower, p.Upper)
	}

	var fitX, fitY []float64
	for i, v := range x {
		inside := v > p.Lower && v < p.Upper
		if inside != p.Invert {
			fitX = append(fitX, v)
			fitY = append(fitY, y[i])
		}
	}
	if len(fitX) < p.Degree+1 {
		return nil, nil, badParams("baseline region holds %d samples, need %d", len(fitX), p.Degree+1)
	}

	coeffs, err := polyFit(fitX, fitY, p.Degree)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range x {
		y[i] -= evalPoly(coeffs, v)
	}
	return x, y, nil
}

// polyFit solves the least-squares Vandermonde system for polynomial coefficients in
// ascending-power order.
func polyFit(x, y []float64, degree int) ([]float64, error) {
	n := len(x)
	a := mat.NewDense(n, degree+1, nil)
	for i := 0; i < n; i++ {
		v := 1.0
		for k := 0; k <= degree; k++ {
			a.Set(i, k, v)
			v *= x[i]
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	b := mat.NewVecDense(n, append([]float64(nil), y...))
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, badParams("baseline fit is singular over the selected region")
	}

	coeffs := make([]float64, degree+1)
	for k := range coeffs {
		coeffs[k] = sol.AtVec(k)
	}
	return coeffs, nil
}

func evalPoly(coeffs []float64, x float64) float64 {
	var acc float64
	for k := len(coeffs) - 1; k >= 0; k-- {
		acc = acc*x + coeffs[k]
	}
	return acc
}

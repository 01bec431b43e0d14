package peakfit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	maxIterations = 300
	costTolerance = 1e-12
	gradTolerance = 1e-10
	dampingInit   = 1e-3
	dampingMax    = 1e12
	dampingFloor  = 1e-12
)

// solve minimizes the squared residual of a Gaussian sum against (x, y) with a damped
// Gauss-Newton (Levenberg-Marquardt) iteration. Amplitudes and widths are kept
// non-negative by projecting every trial point onto the bound; centers move freely.
//
// The solver never fails: it returns the best parameters reached, and the report says
// whether it stopped on a tolerance or on the iteration cap.
func solve(initial, x, y []float64) ([]float64, FitReport) {
	p := project(append([]float64(nil), initial...))
	n, m := len(x), len(p)

	r := residual(p, x, y)
	cost := 0.5 * floats.Dot(r, r)

	damping := dampingInit
	var report FitReport

	for iter := 1; iter <= maxIterations; iter++ {
		report.Iterations = iter

		jac := jacobian(p, x)

		var grad mat.VecDense
		grad.MulVec(jac.T(), mat.NewVecDense(n, r))
		if mat.Norm(&grad, math.Inf(1)) < gradTolerance {
			report.Converged = true
			break
		}

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)

		rhs := mat.NewVecDense(m, nil)
		rhs.ScaleVec(-1, &grad)

		accepted := false
		for damping <= dampingMax {
			a := mat.DenseCopyOf(&jtj)
			for i := 0; i < m; i++ {
				// Marquardt scaling keeps the step well conditioned even when a
				// component's column of the Jacobian has collapsed.
				a.Set(i, i, jtj.At(i, i)*(1+damping)+dampingFloor)
			}

			var step mat.VecDense
			if err := step.SolveVec(a, rhs); err != nil {
				damping *= 10
				continue
			}

			trial := make([]float64, m)
			for i := range trial {
				trial[i] = p[i] + step.AtVec(i)
			}
			trial = project(trial)

			rTrial := residual(trial, x, y)
			costTrial := 0.5 * floats.Dot(rTrial, rTrial)
			if costTrial < cost {
				drop := cost - costTrial
				p, r, cost = trial, rTrial, costTrial
				damping = math.Max(damping*0.3, dampingFloor)
				accepted = true
				if drop <= costTolerance*(cost+costTolerance) {
					report.Converged = true
				}
				break
			}
			damping *= 10
		}

		if !accepted || report.Converged {
			break
		}
	}

	report.Residual = math.Sqrt(2 * cost)
	return p, report
}

// project clamps amplitudes and widths to the [0, inf) bound in place.
func project(p []float64) []float64 {
	for i := 0; i+2 < len(p); i += 3 {
		if p[i] < 0 {
			p[i] = 0
		}
		if p[i+2] < 0 {
			p[i+2] = 0
		}
	}
	return p
}

// residual returns model(x) - y for the current parameters.
func residual(p, x, y []float64) []float64 {
	r := Evaluate(p, x)
	for i := range r {
		r[i] -= y[i]
	}
	return r
}

// jacobian fills the n x m matrix of partial derivatives of the residual with respect to
// each parameter. A component pinned at zero width contributes nothing and gets a zero
// column block.
func jacobian(p, x []float64) *mat.Dense {
	n, m := len(x), len(p)
	j := mat.NewDense(n, m, nil)
	for k := 0; k+2 < m; k += 3 {
		a, mu, sigma := p[k], p[k+1], p[k+2]
		if sigma <= 0 {
			continue
		}
		for i, v := range x {
			d := v - mu
			e := math.Exp(-d * d / (2 * sigma * sigma))
			j.Set(i, k, e)
			j.Set(i, k+1, a*e*d/(sigma*sigma))
			j.Set(i, k+2, a*e*d*d/(sigma*sigma*sigma))
		}
	}
	return j
}

// Package solver provides a stiffness-capable integrator behind the
// github.com/rollingthunder/differential ode.Integrator contract.
package solver

import (
	"errors"
	"math"

	"github.com/rollingthunder/differential/ode"
	"gonum.org/v1/gonum/mat"
)

// method constants (Shampine-Reichelt, the ode23s pair)
const (
	gam = 0.2928932188134524 // 1/(2+√2)
	e32 = 7.414213562373095  // 6+√2
)

const sqrtEps = 1.4901161193847656e-08

type rosenbrock struct {
	ode.IntegratorInfo
}

// NewRosenbrock returns a linearly implicit two-stage L-stable
// Rosenbrock integrator of order two with an embedded third-order error
// estimate and a finite-difference Jacobian, suited to stiff systems.
func NewRosenbrock() ode.Integrator {
	return &rosenbrock{ode.IntegratorInfo{Name: "Rosenbrock23", Stages: 3, Order: 2}}
}

func (r *rosenbrock) Integrate(t, tEnd float64, yT []float64, c *ode.Config) (stat ode.Statistics, err error) {
	// set default parameters if necessary
	if c.MaxStepSize <= 0.0 {
		c.MaxStepSize = tEnd - t
	}
	if c.MinStepSize <= 0.0 {
		c.MinStepSize = 1e-13
	}
	if c.MaxStepCount == 0 {
		c.MaxStepCount = 1000000
	}
	if c.AbsoluteTolerance <= 0.0 {
		c.AbsoluteTolerance = 1e-6
	}
	if c.RelativeTolerance <= 0.0 {
		c.RelativeTolerance = c.AbsoluteTolerance
	}
	if c.Fcn == nil {
		return stat, errors.New("no right-hand side supplied")
	}

	n := len(yT)
	f0, f1, f2 := make([]float64, n), make([]float64, n), make([]float64, n)
	k1, k2, k3 := make([]float64, n), make([]float64, n), make([]float64, n)
	yStage, yNew := make([]float64, n), make([]float64, n)
	rhs := make([]float64, n)
	ytmp, ftmp := make([]float64, n), make([]float64, n)
	jac := mat.NewDense(n, n, nil)
	w := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	x := mat.NewVecDense(n, nil)

	c.Fcn(t, yT, f0)
	stat.EvaluationCount = 1

	h := c.InitialStepSize
	if h <= 0.0 {
		h = ode.EstimateStepSize(t, yT, f0, c, r.Order)
		stat.EvaluationCount++
	}

	solve := func(dst []float64) error {
		for i := 0; i < n; i++ {
			b.SetVec(i, rhs[i])
		}
		if err := x.SolveVec(w, b); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			dst[i] = x.AtVec(i)
		}
		return nil
	}

	for t < tEnd {
		if stat.StepCount >= c.MaxStepCount {
			err = errors.New("maximum step count exceeded")
			break
		}
		if h < c.MinStepSize {
			err = errors.New("stepsize too small")
			break
		}
		if t+h > tEnd {
			h = tEnd - t
		}
		stat.StepCount++

		// W = I − hγJ with J ≈ ∂f/∂y at (t, yT)
		numjac(c.Fcn, t, yT, f0, jac, ytmp, ftmp)
		stat.EvaluationCount += uint(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := -h * gam * jac.At(i, j)
				if i == j {
					v++
				}
				w.Set(i, j, v)
			}
		}

		reject := func() {
			stat.RejectedCount++
			h *= 0.5
		}

		copy(rhs, f0)
		if e := solve(k1); e != nil {
			reject()
			continue
		}
		for i := 0; i < n; i++ {
			yStage[i] = yT[i] + 0.5*h*k1[i]
		}
		c.Fcn(t+0.5*h, yStage, f1)

		for i := 0; i < n; i++ {
			rhs[i] = f1[i] - k1[i]
		}
		if e := solve(k2); e != nil {
			reject()
			continue
		}
		for i := 0; i < n; i++ {
			k2[i] += k1[i]
			yNew[i] = yT[i] + h*k2[i]
		}
		c.Fcn(t+h, yNew, f2)
		stat.EvaluationCount += 2

		for i := 0; i < n; i++ {
			rhs[i] = f2[i] - e32*(k2[i]-f1[i]) - 2.*(k1[i]-f0[i])
		}
		if e := solve(k3); e != nil {
			reject()
			continue
		}

		// embedded third-order error estimate
		relativeError := 0.0
		for i := 0; i < n; i++ {
			le := (h / 6.) * (k1[i] - 2.*k2[i] + k3[i])
			tol := c.AbsoluteTolerance + c.RelativeTolerance*math.Max(math.Abs(yT[i]), math.Abs(yNew[i]))
			relativeError += math.Pow(le/tol, 2.)
		}
		relativeError = math.Sqrt(relativeError / float64(n))

		if math.IsNaN(relativeError) || math.IsInf(relativeError, 0) {
			reject()
			continue
		}

		fac := 0.8 * math.Pow(relativeError+1e-12, -1./3.)
		if relativeError > 1.0 {
			stat.RejectedCount++
			h *= math.Max(0.2, math.Min(fac, 1.0))
			continue
		}

		// accept
		t += h
		copy(yT, yNew)
		copy(f0, f2) // first-same-as-last
		stat.LastStepSize = h
		h *= math.Max(0.2, math.Min(fac, 5.0))
		if h > c.MaxStepSize {
			h = c.MaxStepSize
		}
		stat.NextStepSize = h
		if c.OneStepOnly {
			break
		}
	}
	stat.CurrentTime = t
	return
}

// numjac fills jac with a forward-difference Jacobian of fcn about (t, y).
func numjac(fcn ode.Function, t float64, y, f0 []float64, jac *mat.Dense, ytmp, ftmp []float64) {
	n := len(y)
	copy(ytmp, y)
	for j := 0; j < n; j++ {
		dy := sqrtEps * math.Max(math.Abs(y[j]), 1e-8)
		ytmp[j] = y[j] + dy
		fcn(t, ytmp, ftmp)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (ftmp[i]-f0[i])/dy)
		}
		ytmp[j] = y[j]
	}
}

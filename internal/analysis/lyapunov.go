package analysis

import (
	"math"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/integrators"
	"github.com/san-kum/lorenzsim/internal/physics"
	"github.com/san-kum/lorenzsim/internal/sim"
)

// Separation runs two trajectories that start delta apart and returns
// their Euclidean distance after each of the n steps. Nothing is
// renormalized, so the raw growth is visible.
func Separation(x0, delta dynamo.Vector3, cfg dynamo.Config, n int) []float64 {
	a := sim.New(x0, cfg)
	b := sim.New(x0.Add(delta), cfg)

	out := make([]float64, n)
	for i := range out {
		out[i] = a.Step().Current.Distance(b.Step().Current)
	}
	return out
}

// LyapunovExponent estimates the largest Lyapunov exponent by the
// two-trajectory method: after every step the companion is pulled back to
// distance d0 along the current separation and the log growth is
// averaged. A positive value indicates chaos; the classic Lorenz
// parameters give about 0.9.
func LyapunovExponent(x0 dynamo.Vector3, cfg dynamo.Config, n int, d0 float64) float64 {
	if n <= 0 || d0 <= 0 {
		return 0
	}

	f := physics.FromConfig(cfg).Field()
	x := x0
	xp := x0.Add(dynamo.V(d0, 0, 0))

	sumLog := 0.0
	count := 0
	for i := 0; i < n; i++ {
		x = integrators.RK4(x, cfg.Dt, f)
		xp = integrators.RK4(xp, cfg.Dt, f)

		sep := x.Distance(xp)
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		xp = x.Add(xp.Subtract(x).Scale(d0 / sep))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * cfg.Dt)
}

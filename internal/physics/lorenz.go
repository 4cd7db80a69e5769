package physics

import (
	"math"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

// Lorenz holds the three parameters of the Lorenz system. Values are fixed
// once a run starts; the simulator only ever reads them.
type Lorenz struct{ Sigma, Rho, Beta float64 }

// NewLorenz returns the classic chaotic regime (10, 28, 8/3).
func NewLorenz() Lorenz {
	return Lorenz{dynamo.DefaultSigma, dynamo.DefaultRho, dynamo.DefaultBeta}
}

// FromConfig takes sigma, rho and beta from a run config.
func FromConfig(cfg dynamo.Config) Lorenz { return Lorenz{cfg.Sigma, cfg.Rho, cfg.Beta} }

// Derivative evaluates the Lorenz vector field at s:
//
//	dx/dt = σ(y - x)
//	dy/dt = x(ρ - z) - y
//	dz/dt = xy - βz
func Derivative(s dynamo.Vector3, sigma, rho, beta float64) dynamo.Vector3 {
	return dynamo.Vector3{
		X: sigma * (s.Y - s.X),
		Y: s.X*(rho-s.Z) - s.Y,
		Z: s.X*s.Y - beta*s.Z,
	}
}

// Field binds the parameters into a dynamo.Field.
func (l Lorenz) Field() dynamo.Field {
	sigma, rho, beta := l.Sigma, l.Rho, l.Beta
	return func(s dynamo.Vector3) dynamo.Vector3 { return Derivative(s, sigma, rho, beta) }
}

// Equilibria returns the three fixed points: the origin and, for ρ > 1,
// the pair C± = (±√(β(ρ-1)), ±√(β(ρ-1)), ρ-1).
func (l Lorenz) Equilibria() []dynamo.Vector3 {
	pts := []dynamo.Vector3{{}}
	if l.Rho <= 1 {
		return pts
	}
	c := math.Sqrt(l.Beta * (l.Rho - 1))
	return append(pts, dynamo.V(c, c, l.Rho-1), dynamo.V(-c, -c, l.Rho-1))
}

package dynamo

import (
	"fmt"
	"math"
)

// Field is the right-hand side of an autonomous ODE: it maps a state to its
// instantaneous derivative.
type Field func(Vector3) Vector3

// Classic chaotic-regime parameters and the default frame step.
const (
	DefaultSigma = 10.0
	DefaultRho   = 28.0
	DefaultBeta  = 8.0 / 3.0
	DefaultDt    = 0.01
)

// Config holds the parameters fixed for the lifetime of a run.
type Config struct {
	Sigma float64
	Rho   float64
	Beta  float64
	Dt    float64
}

func DefaultConfig() Config {
	return Config{
		Sigma: DefaultSigma,
		Rho:   DefaultRho,
		Beta:  DefaultBeta,
		Dt:    DefaultDt,
	}
}

// Validate checks the step size and parameters before a run is built.
// The simulator itself never validates.
func (c Config) Validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("dt=%v: %w", c.Dt, ErrInvalidStep)
	}
	for name, v := range map[string]float64{"sigma": c.Sigma, "rho": c.Rho, "beta": c.Beta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%v: %w", name, v, ErrInvalidParameter)
		}
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("sigma=%g rho=%g beta=%.4f dt=%g", c.Sigma, c.Rho, c.Beta, c.Dt)
}

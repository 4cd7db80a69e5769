package integrators

import "github.com/san-kum/lorenzsim/internal/dynamo"

// Stepper advances a state by one fixed step h under field f.
type Stepper interface {
	Step(f dynamo.Field, x dynamo.Vector3, h float64) dynamo.Vector3
}

// RK4Stepper is the Stepper form of RK4.
type RK4Stepper struct{}

func NewRK4() RK4Stepper { return RK4Stepper{} }

func (RK4Stepper) Step(f dynamo.Field, x dynamo.Vector3, h float64) dynamo.Vector3 {
	return RK4(x, h, f)
}

// RK4 performs one classic fourth-order Runge-Kutta step of size h.
// It evaluates f exactly four times and does not check h; callers own
// the step size.
func RK4(x dynamo.Vector3, h float64, f dynamo.Field) dynamo.Vector3 {
	k1 := f(x).Scale(h)
	k2 := f(x.Add(k1.Scale(0.5))).Scale(h)
	k3 := f(x.Add(k2.Scale(0.5))).Scale(h)
	k4 := f(x.Add(k3)).Scale(h)

	return x.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(1.0 / 6.0))
}

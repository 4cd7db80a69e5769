// Package physics defines the Lorenz vector field.
//
// [Derivative] is the pure right-hand side of the system; [Lorenz] bundles
// fixed parameters and produces a [dynamo.Field] for the integrator:
//
//	lz := physics.NewLorenz()
//	next := integrators.RK4(x, dt, lz.Field())
//
// The field is total over finite inputs. Large step sizes can drive the
// state to Inf/NaN; that is a property of fixed-step integration of a
// chaotic system and is not treated as an error here.
package physics

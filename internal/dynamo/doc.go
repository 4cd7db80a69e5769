// Package dynamo provides the numerical primitives for the Lorenz simulation.
//
// The package defines the value types shared by every other package:
//
//   - [Vector3]: immutable three-component state vector
//   - [Field]: right-hand side of an autonomous ODE, dX/dt = f(X)
//   - [Config]: fixed run parameters (sigma, rho, beta, step size)
//
// # Example
//
//	lz := physics.NewLorenz()
//	next := integrators.RK4(dynamo.V(10, 1, 10), 0.01, lz.Field())
//
// # Thread Safety
//
// All values in this package are immutable and safe to share.
package dynamo

package dynamo

import (
	"fmt"
	"math"
)

// Vector3 is an immutable 3D vector. Every method returns a new value.
type Vector3 struct {
	X, Y, Z float64
}

// V builds a Vector3 from its components.
func V(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Add returns the componentwise sum.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Invert returns the componentwise negation.
func (v Vector3) Invert() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Scale multiplies every component by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Subtract returns v - o, computed as v + (-o).
func (v Vector3) Subtract(o Vector3) Vector3 { return v.Add(o.Invert()) }

// Dot returns the inner product.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float64 { return v.Subtract(o).Norm() }

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String formats the vector as (x, y, z).
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

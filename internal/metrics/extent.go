package metrics

import (
	"math"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

// Extent tracks the axis-aligned bounding box and the largest distance
// from the origin reached by finite frames.
type Extent struct {
	Min, Max dynamo.Vector3
	radius   float64
	seen     bool
}

func NewExtent() *Extent { return &Extent{} }

func (e *Extent) Name() string { return "max_radius" }

func (e *Extent) OnStep(f sim.Frame) {
	p := f.Current
	if !p.IsFinite() {
		return
	}
	if !e.seen {
		e.Min, e.Max, e.seen = p, p, true
	}
	e.Min = dynamo.V(math.Min(e.Min.X, p.X), math.Min(e.Min.Y, p.Y), math.Min(e.Min.Z, p.Z))
	e.Max = dynamo.V(math.Max(e.Max.X, p.X), math.Max(e.Max.Y, p.Y), math.Max(e.Max.Z, p.Z))
	e.radius = math.Max(e.radius, p.Norm())
}

func (e *Extent) Value() float64 { return e.radius }

// Center is the midpoint of the bounding box.
func (e *Extent) Center() dynamo.Vector3 { return e.Min.Add(e.Max).Scale(0.5) }

func (e *Extent) Reset() { *e = Extent{} }

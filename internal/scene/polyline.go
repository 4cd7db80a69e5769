package scene

import (
	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

// Segment is one drawn piece of the trajectory.
type Segment struct {
	From, To dynamo.Vector3
	Color    sim.Color
}

// Polyline is the ever-growing trajectory. Segments are only appended,
// never removed or merged.
type Polyline struct {
	segments []Segment
}

func NewPolyline() *Polyline {
	return &Polyline{segments: make([]Segment, 0, 1024)}
}

// Append records the segment of a simulation frame.
func (p *Polyline) Append(f sim.Frame) {
	p.segments = append(p.segments, Segment{From: f.Previous, To: f.Current, Color: f.Color})
}

// OnStep lets a Polyline be registered directly as a sim.Observer.
func (p *Polyline) OnStep(f sim.Frame) { p.Append(f) }

func (p *Polyline) Len() int { return len(p.segments) }

// Segments returns the stored segments. Callers must not modify them.
func (p *Polyline) Segments() []Segment { return p.segments }

// Package scene holds presentation state that sits next to the simulation
// but never touches it: the orbiting camera and the growing polyline.
package scene

import (
	"math"
	"time"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

// Mode is the camera control mode.
type Mode int

const (
	Spinning Mode = iota
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "manual"
	}
	return "spinning"
}

const (
	// RotateStep is the angle applied per arrow-key press, in radians.
	RotateStep = 0.05
	// SpinRate converts wall-clock milliseconds to orbit angle.
	SpinRate = 0.0005
	// DefaultRadius is the orbit distance from the scene origin.
	DefaultRadius = 200.0
)

// Orbit is a camera circling the scene's vertical (y) axis and always
// looking at the origin.
type Orbit struct {
	mode   Mode
	pos    dynamo.Vector3
	radius float64
}

// NewOrbit places the camera on the +z axis at radius r.
func NewOrbit(r float64) *Orbit {
	return &Orbit{mode: Spinning, pos: dynamo.V(0, 0, r), radius: r}
}

func (o *Orbit) Mode() Mode               { return o.mode }
func (o *Orbit) Position() dynamo.Vector3 { return o.pos }

// Toggle flips between Spinning and Manual.
func (o *Orbit) Toggle() {
	if o.mode == Spinning {
		o.mode = Manual
	} else {
		o.mode = Spinning
	}
}

// Rotate turns the camera by dir*RotateStep around the y axis using a 2D
// rotation of (x, z). Positive dir is counter-clockwise seen from above.
func (o *Orbit) Rotate(dir float64) {
	s, c := math.Sincos(dir * RotateStep)
	x, z := o.pos.X, o.pos.Z
	o.pos = dynamo.V(x*c-z*s, o.pos.Y, x*s+z*c)
}

// Spin moves the camera to the wall-clock angle for now while in Spinning
// mode. Coordinates are floored to whole units. In Manual mode it does
// nothing.
func (o *Orbit) Spin(now time.Time) {
	if o.mode != Spinning {
		return
	}
	s, c := math.Sincos(float64(now.UnixMilli()) * SpinRate)
	o.pos = dynamo.V(math.Floor(c*o.radius), o.pos.Y, math.Floor(s*o.radius))
}

// Angle returns the camera's current azimuth in the x-z plane.
func (o *Orbit) Angle() float64 { return math.Atan2(o.pos.Z, o.pos.X) }

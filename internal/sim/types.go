package sim

import (
	"math"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

// ColorScale maps a coordinate magnitude onto a nominal [0, 1] channel.
const ColorScale = 40.0

// Color is an RGB triple derived from the current position. Channels are
// not clamped: |coordinate| > ColorScale yields values above 1.
type Color struct{ R, G, B float64 }

// ColorOf computes (|x|, |y|, |z|) / ColorScale.
func ColorOf(v dynamo.Vector3) Color {
	return Color{
		R: math.Abs(v.X) / ColorScale,
		G: math.Abs(v.Y) / ColorScale,
		B: math.Abs(v.Z) / ColorScale,
	}
}

// Clamped returns the color with each channel limited to [0, 1], for
// rendering surfaces that need it.
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Frame is what one Step hands to the presentation layer: a line segment
// from Previous to Current, the color for it, and the elapsed time.
type Frame struct {
	Step     int
	Previous dynamo.Vector3
	Current  dynamo.Vector3
	Elapsed  float64
	Color    Color
}

// Observer receives every frame synchronously after the state update.
type Observer interface {
	OnStep(f Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Frame)

func (fn ObserverFunc) OnStep(f Frame) { fn(f) }

// Metric is an observer that reduces the trajectory to one number.
type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

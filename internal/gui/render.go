package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

// RenderTrajectory draws every segment recorded so far.
func (a *App) RenderTrajectory() {
	for _, s := range a.Line.Segments() {
		if !drawable(s.From) || !drawable(s.To) {
			continue
		}
		rl.DrawLine3D(toVector3(s.From), toVector3(s.To), toColor(s.Color))
	}
	if p := a.Last.Current; drawable(p) {
		rl.DrawSphere(toVector3(p), 0.5, rl.White)
	}
}

func (a *App) RenderEquilibria() {
	for _, p := range a.Equilibria {
		rl.DrawSphere(p, 0.4, ColTextDim)
	}
}

// maxCoord keeps vertices well inside float32 range; a diverged run
// produces coordinates that would become Inf on conversion.
const maxCoord = 1e6

func drawable(v dynamo.Vector3) bool {
	return math.Abs(v.X) < maxCoord && math.Abs(v.Y) < maxCoord && math.Abs(v.Z) < maxCoord
}

func toVector3(v dynamo.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// toColor converts a frame color to bytes; channels above 1 saturate.
func toColor(c sim.Color) rl.Color {
	c = c.Clamped()
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), 255)
}

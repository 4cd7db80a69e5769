package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/scene"
)

// Camera projects world points onto a canvas from an eye position looking
// at Target, with +y up.
type Camera struct {
	Eye, Target dynamo.Vector3
	// Span is the world-space width that fills the shorter canvas side at
	// the target distance.
	Span float64
	Zoom float64
}

func NewCamera() *Camera {
	return &Camera{
		Eye:    dynamo.V(0, 0, scene.DefaultRadius),
		Target: dynamo.Vector3{},
		Span:   90,
		Zoom:   1,
	}
}

// Follow puts the eye at the orbit's position.
func (c *Camera) Follow(o *scene.Orbit) { c.Eye = o.Position() }

func cross(a, b dynamo.Vector3) dynamo.Vector3 {
	return dynamo.V(a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X)
}

func unit(v dynamo.Vector3) dynamo.Vector3 {
	if n := v.Norm(); n != 0 {
		return v.Scale(1 / n)
	}
	return dynamo.Vector3{}
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera) basis() (fwd, right, up dynamo.Vector3) {
	fwd = unit(c.Target.Subtract(c.Eye))
	right = unit(cross(fwd, dynamo.V(0, 1, 0)))
	if right == (dynamo.Vector3{}) {
		right = dynamo.V(1, 0, 0)
	}
	up = cross(right, fwd)
	return
}

// project maps p to sub-pixel coordinates on a sw x sh canvas without
// rounding or bounds checks. ok is false for points behind the eye,
// non-finite points and projections that overflow.
func (c *Camera) project(p dynamo.Vector3, sw, sh int) (x, y float64, ok bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	fwd, right, up := c.basis()
	rel := p.Subtract(c.Eye)
	depth := rel.Dot(fwd)
	if depth <= 1e-6 {
		return 0, 0, false
	}

	dist := c.Target.Distance(c.Eye)
	minDim := math.Min(float64(sw), float64(sh))
	focal := minDim / c.Span * dist * c.Zoom

	x = rel.Dot(right)/depth*focal + float64(sw/2)
	y = -rel.Dot(up)/depth*focal + float64(sh/2)
	if !finite(x) || !finite(y) {
		return 0, 0, false
	}
	return x, y, true
}

// Project maps p to a sub-pixel on a sw x sh canvas. ok is false when the
// point is behind the eye, non-finite or lands off the canvas.
func (c *Camera) Project(p dynamo.Vector3, sw, sh int) (x, y int, ok bool) {
	fx, fy, ok := c.project(p, sw, sh)
	if !ok || fx < 0 || fy < 0 || fx >= float64(sw) || fy >= float64(sh) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// clipSegment clips (x0,y0)-(x1,y1) to [0,xmax]x[0,ymax] (Liang-Barsky).
// ok is false when no part of the segment is inside.
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (ax, ay, bx, by float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	if !finite(dx) || !finite(dy) {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, xmax - x0, y0, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// Edge is a colored world-space segment.
type Edge struct {
	Start, End dynamo.Vector3
	Color      lipgloss.Color
}

// Render3D draws edges in order, so later edges paint over earlier ones.
// Segments are clipped to the canvas first, so a diverged trajectory with
// enormous coordinates costs no more than one that fits on screen.
func Render3D(c *Canvas, edges []Edge, cam *Camera) {
	if c == nil || cam == nil {
		return
	}
	sw, sh := c.PixelSize()
	xmax, ymax := float64(sw-1), float64(sh-1)
	for _, e := range edges {
		x1, y1, ok1 := cam.project(e.Start, sw, sh)
		x2, y2, ok2 := cam.project(e.End, sw, sh)
		if !ok1 || !ok2 {
			continue
		}
		ax, ay, bx, by, ok := clipSegment(x1, y1, x2, y2, xmax, ymax)
		if !ok {
			continue
		}
		c.DrawLine(int(math.Round(ax)), int(math.Round(ay)), int(math.Round(bx)), int(math.Round(by)), e.Color)
	}
}

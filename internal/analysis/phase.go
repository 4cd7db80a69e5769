package analysis

import (
	"fmt"
	"strings"

	"github.com/san-kum/lorenzsim/internal/dynamo"
)

// Plane selects two coordinates of a 3D trajectory.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// ParsePlane accepts "xy", "xz" or "yz".
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane: %s (want xy, xz or yz)", s)
}

func (p Plane) String() string {
	return [...]string{"xy", "xz", "yz"}[p]
}

func (p Plane) pick(v dynamo.Vector3) (float64, float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Projection is a trajectory flattened onto one coordinate plane.
type Projection struct {
	Plane  Plane
	Points []struct{ X, Y float64 }
}

// Project flattens a trajectory; non-finite points are skipped.
func Project(traj []dynamo.Vector3, plane Plane) *Projection {
	p := &Projection{
		Plane:  plane,
		Points: make([]struct{ X, Y float64 }, 0, len(traj)),
	}
	for _, v := range traj {
		if !v.IsFinite() {
			continue
		}
		a, b := plane.pick(v)
		p.Points = append(p.Points, struct{ X, Y float64 }{a, b})
	}
	return p
}

// ProjectionToASCII draws the projection into a width x height grid.
func ProjectionToASCII(p *Projection, width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// Later points overwrite earlier ones, so density reads left to right
	// in time: '.' early, 'o' middle, '•' late.
	n := len(p.Points)
	for i, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		mark := '•'
		switch {
		case i < n/3:
			mark = '.'
		case i < 2*n/3:
			mark = 'o'
		}
		canvas[row][col] = mark
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

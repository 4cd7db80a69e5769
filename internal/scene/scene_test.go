package scene

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

func TestOrbitToggle(t *testing.T) {
	o := NewOrbit(DefaultRadius)
	if o.Mode() != Spinning {
		t.Fatalf("expected spinning by default, got %s", o.Mode())
	}
	o.Toggle()
	if o.Mode() != Manual {
		t.Errorf("expected manual after toggle, got %s", o.Mode())
	}
	o.Toggle()
	if o.Mode() != Spinning {
		t.Errorf("expected spinning after second toggle, got %s", o.Mode())
	}
}

func TestOrbitRotatePreservesRadius(t *testing.T) {
	o := NewOrbit(DefaultRadius)
	for i := 0; i < 100; i++ {
		o.Rotate(1)
	}
	p := o.Position()
	if r := math.Hypot(p.X, p.Z); math.Abs(r-DefaultRadius) > 1e-9 {
		t.Errorf("radius drifted to %f", r)
	}
	if p.Y != 0 {
		t.Errorf("rotation changed height: %f", p.Y)
	}
}

func TestOrbitRotateAngle(t *testing.T) {
	o := NewOrbit(DefaultRadius)
	start := o.Angle()
	o.Rotate(1)
	if d := o.Angle() - start; math.Abs(d-RotateStep) > 1e-12 {
		t.Errorf("expected angle change %f, got %f", RotateStep, d)
	}
	o.Rotate(-1)
	if p := o.Position(); p.Distance(dynamo.V(0, 0, DefaultRadius)) > 1e-9 {
		t.Errorf("left then right should return home, got %v", p)
	}
}

func TestOrbitSpin(t *testing.T) {
	o := NewOrbit(DefaultRadius)
	now := time.UnixMilli(1000)
	o.Spin(now)

	angle := 1000 * SpinRate
	want := dynamo.V(math.Floor(math.Cos(angle)*DefaultRadius), 0, math.Floor(math.Sin(angle)*DefaultRadius))
	if o.Position() != want {
		t.Errorf("expected %v, got %v", want, o.Position())
	}
}

func TestOrbitSpinIgnoredInManual(t *testing.T) {
	o := NewOrbit(DefaultRadius)
	o.Toggle()
	o.Rotate(1)
	before := o.Position()
	o.Spin(time.UnixMilli(123456))
	if o.Position() != before {
		t.Errorf("spin moved a manual camera: %v -> %v", before, o.Position())
	}
}

func TestPolylineAppendOnly(t *testing.T) {
	s := sim.New(sim.InitialPosition, dynamo.DefaultConfig())
	p := NewPolyline()
	s.AddObserver(p)

	var frames []sim.Frame
	for i := 0; i < 10; i++ {
		frames = append(frames, s.Step())
	}

	if p.Len() != 10 {
		t.Fatalf("expected 10 segments, got %d", p.Len())
	}
	segs := p.Segments()
	for i, f := range frames {
		if segs[i].From != f.Previous || segs[i].To != f.Current || segs[i].Color != f.Color {
			t.Errorf("segment %d does not match frame", i)
		}
		if i > 0 && segs[i].From != segs[i-1].To {
			t.Errorf("segment %d is not connected to its predecessor", i)
		}
	}
}

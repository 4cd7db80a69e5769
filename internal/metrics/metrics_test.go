package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

func frame(step int, v dynamo.Vector3) sim.Frame {
	return sim.Frame{Step: step, Current: v}
}

func TestStability(t *testing.T) {
	m := NewStability(50)
	if m.Value() != 1.0 {
		t.Errorf("expected 1.0 with no samples, got %f", m.Value())
	}

	m.OnStep(frame(1, dynamo.V(1, 2, 3)))
	m.OnStep(frame(2, dynamo.V(60, 0, 0)))
	m.OnStep(frame(3, dynamo.V(0, math.NaN(), 0)))
	m.OnStep(frame(4, dynamo.V(-49, 49, 49)))

	if got := m.Value(); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Error("reset should restore 1.0")
	}
}

func TestFinite(t *testing.T) {
	m := NewFinite()
	m.OnStep(frame(1, dynamo.V(1, 1, 1)))
	m.OnStep(frame(2, dynamo.V(math.Inf(1), 1, 1)))
	m.OnStep(frame(3, dynamo.V(math.NaN(), math.NaN(), math.NaN())))

	if m.Value() != 2 {
		t.Errorf("expected 2 non-finite frames, got %f", m.Value())
	}
	if m.FirstStep() != 2 {
		t.Errorf("expected first bad step 2, got %d", m.FirstStep())
	}

	m.Reset()
	if m.Value() != 0 || m.FirstStep() != 0 {
		t.Error("reset did not clear counters")
	}
}

func TestExtent(t *testing.T) {
	m := NewExtent()
	m.OnStep(frame(1, dynamo.V(1, -2, 3)))
	m.OnStep(frame(2, dynamo.V(-4, 6, 0)))
	m.OnStep(frame(3, dynamo.V(math.Inf(1), 0, 0)))

	if m.Min != dynamo.V(-4, -2, 0) || m.Max != dynamo.V(1, 6, 3) {
		t.Errorf("unexpected box %v..%v", m.Min, m.Max)
	}
	if want := math.Sqrt(52); math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected radius %f, got %f", want, m.Value())
	}
	if c := m.Center(); c != dynamo.V(-1.5, 2, 1.5) {
		t.Errorf("unexpected center %v", c)
	}
}

func TestMetricsOnLorenzRun(t *testing.T) {
	s := sim.New(sim.InitialPosition, dynamo.DefaultConfig())
	stab, fin, ext := NewStability(100), NewFinite(), NewExtent()
	s.AddMetric(stab)
	s.AddMetric(fin)
	s.AddMetric(ext)

	for i := 0; i < 3000; i++ {
		s.Step()
	}

	got := s.Metrics()
	if got["stability"] != 1 {
		t.Errorf("expected full stability, got %f", got["stability"])
	}
	if got["nonfinite_steps"] != 0 {
		t.Errorf("expected no non-finite steps, got %f", got["nonfinite_steps"])
	}
	if r := got["max_radius"]; r < 20 || r > 80 {
		t.Errorf("max radius %f outside the attractor's expected range", r)
	}
	if ext.Min.X >= 0 || ext.Max.X <= 0 {
		t.Errorf("expected the trajectory to visit both wings, x range %g..%g", ext.Min.X, ext.Max.X)
	}
}

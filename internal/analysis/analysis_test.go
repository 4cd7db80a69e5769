package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/sim"
)

func TestPowerSpectrumSine(t *testing.T) {
	dt := 0.01
	n := 1024
	freq := 5.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	got := DominantFrequency(data, dt)
	binWidth := 1 / (float64(n) * dt)
	if math.Abs(got-freq) > binWidth {
		t.Errorf("expected dominant frequency ~%.2f, got %.3f", freq, got)
	}
}

func TestPowerSpectrumPads(t *testing.T) {
	if ps := PowerSpectrum(make([]float64, 1000)); len(ps) != 512 {
		t.Errorf("expected 1000 samples padded to 1024, got %d bins", len(ps))
	}
	if PowerSpectrum(nil) != nil {
		t.Error("expected nil spectrum for empty input")
	}
	if DominantFrequency([]float64{1, 2, 3}, 0) != 0 {
		t.Error("expected 0 for invalid dt")
	}
}

func TestSeparationGrows(t *testing.T) {
	seps := Separation(sim.InitialPosition, dynamo.V(1e-6, 0, 0), dynamo.DefaultConfig(), 2000)
	if len(seps) != 2000 {
		t.Fatalf("expected 2000 samples, got %d", len(seps))
	}
	if seps[0] > 1e-5 {
		t.Errorf("initial separation too large: %g", seps[0])
	}
	if seps[len(seps)-1] < 1.0 {
		t.Errorf("expected separation above 1 after 2000 steps, got %g", seps[len(seps)-1])
	}
}

func TestSeparationZeroDelta(t *testing.T) {
	for i, d := range Separation(sim.InitialPosition, dynamo.Vector3{}, dynamo.DefaultConfig(), 500) {
		if d != 0 {
			t.Fatalf("step %d: identical starts separated by %g", i+1, d)
		}
	}
}

func TestLyapunovExponentClassic(t *testing.T) {
	lambda := LyapunovExponent(sim.InitialPosition, dynamo.DefaultConfig(), 20000, 1e-8)
	if lambda < 0.6 || lambda > 1.2 {
		t.Errorf("expected largest exponent near 0.9, got %.4f", lambda)
	}
}

func TestLyapunovExponentStable(t *testing.T) {
	// Below rho=1 the origin attracts everything.
	cfg := dynamo.Config{Sigma: 10, Rho: 0.5, Beta: 8.0 / 3.0, Dt: 0.01}
	if lambda := LyapunovExponent(dynamo.V(1, 1, 1), cfg, 5000, 1e-8); lambda >= 0 {
		t.Errorf("expected a negative exponent for a stable system, got %.4f", lambda)
	}
	if LyapunovExponent(sim.InitialPosition, dynamo.DefaultConfig(), 0, 1e-8) != 0 {
		t.Error("expected 0 for no steps")
	}
}

func TestParsePlane(t *testing.T) {
	for _, s := range []string{"xy", "XZ", "yz"} {
		p, err := ParsePlane(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
		}
		if p.String() != strings.ToLower(s) {
			t.Errorf("round trip %s -> %s", s, p)
		}
	}
	if _, err := ParsePlane("xw"); err == nil {
		t.Error("expected error for unknown plane")
	}
}

func TestProjectionToASCII(t *testing.T) {
	traj := []dynamo.Vector3{
		dynamo.V(0, 5, 0),
		dynamo.V(1, 5, 1),
		dynamo.V(math.NaN(), 0, 0),
		dynamo.V(2, 5, 2),
	}
	p := Project(traj, PlaneXZ)
	if len(p.Points) != 3 {
		t.Fatalf("expected NaN point dropped, got %d points", len(p.Points))
	}

	out := ProjectionToASCII(p, 10, 5)
	rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	// (0,0) lands bottom-left, (2,2) top-right.
	if []rune(rows[4])[0] != '.' {
		t.Errorf("expected early mark bottom-left, got %q", rows[4])
	}
	if r := []rune(rows[0]); r[len(r)-1] != '•' {
		t.Errorf("expected late mark top-right, got %q", rows[0])
	}

	if ProjectionToASCII(Project(nil, PlaneXY), 10, 5) != "" {
		t.Error("expected empty output for empty projection")
	}
}

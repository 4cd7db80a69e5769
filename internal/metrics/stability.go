package metrics

import (
	"math"

	"github.com/san-kum/lorenzsim/internal/sim"
)

// Stability is the fraction of frames whose coordinates all stay within
// threshold. A healthy Lorenz run at the classic parameters scores 1.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) OnStep(f sim.Frame) {
	s.samples++
	c := f.Current
	for _, val := range [3]float64{c.X, c.Y, c.Z} {
		if !(math.Abs(val) <= s.threshold) {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

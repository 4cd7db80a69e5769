package metrics

import "github.com/san-kum/lorenzsim/internal/sim"

// Finite counts frames whose state has gone NaN or Inf.
type Finite struct {
	bad   int
	first int
}

func NewFinite() *Finite { return &Finite{} }

func (m *Finite) Name() string { return "nonfinite_steps" }

func (m *Finite) OnStep(f sim.Frame) {
	if f.Current.IsFinite() {
		return
	}
	if m.bad == 0 {
		m.first = f.Step
	}
	m.bad++
}

func (m *Finite) Value() float64 { return float64(m.bad) }

// FirstStep is the step at which the state first went non-finite, or 0.
func (m *Finite) FirstStep() int { return m.first }

func (m *Finite) Reset() {
	m.bad = 0
	m.first = 0
}

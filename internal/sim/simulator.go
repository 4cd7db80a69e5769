// Package sim drives the Lorenz state forward one RK4 step per frame.
package sim

import (
	"context"

	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/integrators"
	"github.com/san-kum/lorenzsim/internal/physics"
)

// Simulator owns the evolving Lorenz state. Step is its only mutator and
// is not safe for concurrent use; one frame loop drives one Simulator.
type Simulator struct {
	cfg     dynamo.Config
	field   dynamo.Field
	stepper integrators.Stepper

	current  dynamo.Vector3
	previous dynamo.Vector3
	steps    int

	observers []Observer
	metrics   []Metric
}

// New starts a run at x0. Parameters in cfg are fixed for the run; cfg is
// not validated here (see dynamo.Config.Validate).
func New(x0 dynamo.Vector3, cfg dynamo.Config) *Simulator {
	return &Simulator{
		cfg:       cfg,
		field:     physics.FromConfig(cfg).Field(),
		stepper:   integrators.NewRK4(),
		current:   x0,
		previous:  x0,
		observers: make([]Observer, 0),
		metrics:   make([]Metric, 0),
	}
}

// Initialize is New with the parameters spelled out.
func Initialize(x0 dynamo.Vector3, sigma, rho, beta, h float64) *Simulator {
	return New(x0, dynamo.Config{Sigma: sigma, Rho: rho, Beta: beta, Dt: h})
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// AddMetric resets m and registers it as an observer.
func (s *Simulator) AddMetric(m Metric) {
	m.Reset()
	s.metrics = append(s.metrics, m)
	s.observers = append(s.observers, m)
}

// Step advances the state by one RK4 step and returns the resulting frame.
// It never fails: a diverged trajectory keeps producing NaN/Inf frames.
func (s *Simulator) Step() Frame {
	s.previous = s.current
	s.current = s.stepper.Step(s.field, s.current, s.cfg.Dt)
	s.steps++

	f := Frame{
		Step:     s.steps,
		Previous: s.previous,
		Current:  s.current,
		Elapsed:  s.Elapsed(),
		Color:    ColorOf(s.current),
	}
	for _, o := range s.observers {
		o.OnStep(f)
	}
	return f
}

// Run steps n times, or until ctx is done or fn returns false. A nil fn
// just steps. It returns the number of steps taken.
func (s *Simulator) Run(ctx context.Context, n int, fn func(Frame) bool) (int, error) {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}

		f := s.Step()
		if fn != nil && !fn(f) {
			return i + 1, nil
		}
	}
	return n, nil
}

func (s *Simulator) Current() dynamo.Vector3  { return s.current }
func (s *Simulator) Previous() dynamo.Vector3 { return s.previous }
func (s *Simulator) Steps() int               { return s.steps }
func (s *Simulator) Config() dynamo.Config    { return s.cfg }

// Elapsed is steps*dt, so it carries no summation drift.
func (s *Simulator) Elapsed() float64 { return float64(s.steps) * s.cfg.Dt }

// Metrics returns the current value of every registered metric.
func (s *Simulator) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

package sim

import "github.com/san-kum/lorenzsim/internal/dynamo"

// Diagnostic reports the first frame whose state is NaN or Inf. It only
// observes; the trajectory is never altered or halted.
type Diagnostic struct {
	report func(error)
	err    *dynamo.DivergenceError
}

func NewDiagnostic(report func(error)) *Diagnostic {
	return &Diagnostic{report: report}
}

func (d *Diagnostic) OnStep(f Frame) {
	if d.err != nil || f.Current.IsFinite() {
		return
	}
	d.err = &dynamo.DivergenceError{Step: f.Step, Time: f.Elapsed, State: f.Current}
	if d.report != nil {
		d.report(d.err)
	}
}

// Err returns the recorded divergence, or nil while the run is finite.
func (d *Diagnostic) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzsim/internal/analysis"
	"github.com/san-kum/lorenzsim/internal/dynamo"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerModelFlags(cmd)
	cmd.Flags().IntVar(&frameRate, "fps", 60, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cmd
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	if f := setupLogging(t.TempDir(), false); f != nil {
		f.Close()
		t.Error("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	dir := filepath.Join(t.TempDir(), "logs")
	f := setupLogging(dir, true)
	if f == nil {
		t.Fatal("expected a log file when debug=true")
	}
	log.Print("hello")
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, logName))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCmd(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dynamo() != dynamo.DefaultConfig() {
		t.Errorf("params = %v", cfg.Dynamo())
	}
	if cfg.InitialPosition() != dynamo.V(10, 1, 10) {
		t.Errorf("start = %v", cfg.InitialPosition())
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("rho: 20\nsigma: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := newTestCmd(t, "--preset", "fine", "--config", path, "--sigma", "14", "--x", "1", "--y", "2", "--z", "3")
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != 0.001 {
		t.Errorf("dt = %g, want preset 0.001", cfg.Dt)
	}
	if cfg.Rho != 20 {
		t.Errorf("rho = %g, want file 20", cfg.Rho)
	}
	if cfg.Sigma != 14 {
		t.Errorf("sigma = %g, want flag 14", cfg.Sigma)
	}
	if cfg.InitialPosition() != dynamo.V(1, 2, 3) {
		t.Errorf("start = %v", cfg.InitialPosition())
	}
}

func TestResolveConfigRandomSeed(t *testing.T) {
	a, err := resolveConfig(newTestCmd(t, "--random", "--seed", "7", "--range", "5"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := resolveConfig(newTestCmd(t, "--preset", "random", "--seed", "7", "--range", "5"))
	if err != nil {
		t.Fatal(err)
	}
	if a.InitialPosition() != b.InitialPosition() {
		t.Errorf("same seed gave %v and %v", a.InitialPosition(), b.InitialPosition())
	}
	p := a.InitialPosition()
	for _, c := range []float64{p.X, p.Y, p.Z} {
		if c < 1 || c > 5 || c != float64(int(c)) {
			t.Errorf("coordinate %g outside [1, 5] integers", c)
		}
	}
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"zero dt", []string{"--dt", "0"}},
		{"negative steps", []string{"--steps=-1"}},
		{"missing file", []string{"--config", filepath.Join(os.TempDir(), "does-not-exist.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveConfig(newTestCmd(t, tt.args...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAxisIndex(t *testing.T) {
	for i, name := range []string{"x", "y", "z"} {
		if got, err := axisIndex(name); err != nil || got != i {
			t.Errorf("axisIndex(%q) = %d, %v", name, got, err)
		}
	}
	if _, err := axisIndex("w"); err == nil {
		t.Error("expected error for w")
	}
}

func TestComponent(t *testing.T) {
	traj := []dynamo.Vector3{dynamo.V(1, 2, 3), dynamo.V(4, 5, 6)}
	if got := component(traj, 2); got[0] != 3 || got[1] != 6 {
		t.Errorf("component z = %v", got)
	}
}

func TestSpectrumPlotData(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		want    int
		wantErr bool
	}{
		{"one sample", 1, 0, true},
		{"two samples", 2, 0, true},
		{"three samples", 3, 1, false},
		{"many samples", 1000, 129, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]float64, tt.samples)
			for i := range data {
				data[i] = float64(i % 7)
			}
			got, err := spectrumPlotData(analysis.PowerSpectrum(data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestResolveConfigKeepsPinnedZeroSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("initial:\n  random: true\n  seed: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := resolveConfig(newTestCmd(t, "--config", path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Initial.Seed == nil || *cfg.Initial.Seed != 0 {
		t.Errorf("seed = %v, want pinned 0", cfg.Initial.Seed)
	}
}

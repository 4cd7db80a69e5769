package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzsim/internal/analysis"
	"github.com/san-kum/lorenzsim/internal/config"
	"github.com/san-kum/lorenzsim/internal/dynamo"
	"github.com/san-kum/lorenzsim/internal/gui"
	"github.com/san-kum/lorenzsim/internal/metrics"
	"github.com/san-kum/lorenzsim/internal/sim"
	"github.com/san-kum/lorenzsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	debug      bool
	// Model parameters
	sigma float64
	rho   float64
	beta  float64
	dt    float64
	// Initial position
	startX    float64
	startY    float64
	startZ    float64
	random    bool
	seedRange int
	seed      int64
	steps     int
	frameRate int
	// run
	every      int
	plot       bool
	plane      string
	saveConfig string
	// spectrum
	axis string
	// sensitivity
	delta     float64
	lyapSteps int

	logFile *os.File
)

const logName = "lorenz.log"

func main() {
	rootCmd := &cobra.Command{
		Use:           "lorenz",
		Short:         "lorenz attractor simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(filepath.Join(dataDir, "logs"), debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}

	registerModelFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&every, "every", 0, "print every n-th frame (0 = none)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot x, y, z against time")
	runCmd.Flags().StringVar(&plane, "phase", "", "draw a phase portrait (xy, xz, yz)")
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this yaml file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation in a 3d window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "frequency analysis of one coordinate",
		Args:  cobra.NoArgs,
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().StringVar(&axis, "axis", "x", "coordinate to analyze (x, y, z)")

	sensitivityCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "separation of two nearby trajectories",
		Args:  cobra.NoArgs,
		RunE:  runSensitivity,
	}
	sensitivityCmd.Flags().Float64Var(&delta, "delta", 1e-6, "initial x perturbation")
	sensitivityCmd.Flags().IntVar(&lyapSteps, "lyapunov-steps", 20000, "steps for the Lyapunov estimate (0 = skip)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, spectrumCmd, sensitivityCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// registerModelFlags adds the flags shared by every subcommand.
func registerModelFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".lorenz", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "write a debug log to <data>/logs")
	pf.Float64Var(&sigma, "sigma", dynamo.DefaultSigma, "sigma (Prandtl number)")
	pf.Float64Var(&rho, "rho", dynamo.DefaultRho, "rho (Rayleigh number)")
	pf.Float64Var(&beta, "beta", dynamo.DefaultBeta, "beta (geometric factor)")
	pf.Float64Var(&dt, "dt", dynamo.DefaultDt, "timestep")
	pf.Float64Var(&startX, "x", sim.InitialPosition.X, "initial x")
	pf.Float64Var(&startY, "y", sim.InitialPosition.Y, "initial y")
	pf.Float64Var(&startZ, "z", sim.InitialPosition.Z, "initial z")
	pf.BoolVar(&random, "random", false, "random integer start in [1, range]")
	pf.IntVar(&seedRange, "range", config.DefaultRange, "upper bound for --random")
	pf.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	pf.IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
}

// setupLogging sends the standard logger to dir/lorenz.log when debug is
// set and discards it otherwise. The terminal belongs to the UI.
func setupLogging(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// resolveConfig applies defaults, then the preset, then the config file,
// then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("sigma") {
		cfg.Sigma = sigma
	}
	if f.Changed("rho") {
		cfg.Rho = rho
	}
	if f.Changed("beta") {
		cfg.Beta = beta
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("steps") {
		cfg.Steps = steps
	}
	if f.Changed("fps") {
		cfg.FPS = frameRate
	}
	if f.Changed("x") || f.Changed("y") || f.Changed("z") {
		cfg.Initial.X, cfg.Initial.Y, cfg.Initial.Z = startX, startY, startZ
		cfg.Initial.Random = false
	}
	if f.Changed("random") {
		cfg.Initial.Random = random
	}
	if f.Changed("range") {
		cfg.Initial.Range = seedRange
	}
	if f.Changed("seed") || cfg.Initial.Seed == nil {
		s := seed
		cfg.Initial.Seed = &s
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSimulator builds the simulator and hooks the divergence diagnostic
// into the log.
func newSimulator(cfg *config.Config) *sim.Simulator {
	x0 := cfg.InitialPosition()
	log.Printf("start %s from %s", cfg.Dynamo(), x0)
	s := sim.New(x0, cfg.Dynamo())
	s.AddObserver(sim.NewDiagnostic(func(err error) {
		log.Printf("warning: %v", err)
	}))
	return s
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return err
		}
		log.Printf("config written to %s", saveConfig)
	}

	s := newSimulator(cfg)
	finite, extent := metrics.NewFinite(), metrics.NewExtent()
	s.AddMetric(metrics.NewStability(100))
	s.AddMetric(finite)
	s.AddMetric(extent)

	traj := make([]dynamo.Vector3, 0, cfg.Steps+1)
	traj = append(traj, s.Current())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if every > 0 {
		fmt.Fprintln(w, "step\tt\tx\ty\tz")
	}
	n, err := s.Run(cmd.Context(), cfg.Steps, func(f sim.Frame) bool {
		traj = append(traj, f.Current)
		if every > 0 && f.Step%every == 0 {
			fmt.Fprintf(w, "%d\t%.2f\t%.6f\t%.6f\t%.6f\n", f.Step, f.Elapsed, f.Current.X, f.Current.Y, f.Current.Z)
		}
		return true
	})
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}
	log.Printf("run finished after %d steps", n)

	fmt.Printf("\nparams: %s\n", cfg.Dynamo())
	fmt.Printf("start: %s\n", traj[0])
	fmt.Printf("steps: %d\n", n)
	fmt.Printf("time: %.2f\n", s.Elapsed())
	fmt.Printf("final: %s\n", s.Current())

	m := s.Metrics()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, m[name])
	}
	if finite.Value() > 0 {
		fmt.Printf("  diverged at step %d\n", finite.FirstStep())
	} else {
		fmt.Printf("  bounds: %s .. %s (center %s)\n", extent.Min, extent.Max, extent.Center())
	}

	if plot {
		fmt.Println()
		for i, caption := range []string{"x vs time", "y vs time", "z vs time"} {
			fmt.Println(asciigraph.Plot(component(traj, i),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(caption),
			))
			fmt.Println()
		}
	}

	if plane != "" {
		p, err := analysis.ParsePlane(plane)
		if err != nil {
			return err
		}
		fmt.Printf("\nphase portrait (%s)\n", p)
		fmt.Println(analysis.ProjectionToASCII(analysis.Project(traj, p), 80, 30))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := tea.NewProgram(viz.NewModel(newSimulator(cfg), cfg.FPS), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(newSimulator(cfg), cfg.FPS)
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	idx, err := axisIndex(axis)
	if err != nil {
		return err
	}

	s := newSimulator(cfg)
	traj := make([]dynamo.Vector3, 0, cfg.Steps)
	if _, err := s.Run(cmd.Context(), cfg.Steps, func(f sim.Frame) bool {
		traj = append(traj, f.Current)
		return true
	}); err != nil {
		return err
	}
	data := component(traj, idx)
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}

	plotData, err := spectrumPlotData(analysis.PowerSpectrum(data))
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s over %d steps\n\n", axis, len(data))
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", axis)),
	))
	fmt.Println()

	freq := analysis.DominantFrequency(data, cfg.Dt)
	fmt.Printf("dominant frequency: %.3f per time unit\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f\n", 1.0/freq)
	}
	return nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	x0 := cfg.InitialPosition()
	sep := analysis.Separation(x0, dynamo.V(delta, 0, 0), cfg.Dynamo(), cfg.Steps)
	if len(sep) == 0 {
		return fmt.Errorf("no data")
	}

	logSep := make([]float64, len(sep))
	for i, d := range sep {
		logSep[i] = math.Log10(math.Max(d, 1e-300))
	}

	fmt.Printf("start: %s, perturbation %g in x\n\n", x0, delta)
	fmt.Println(asciigraph.Plot(logSep,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("log10 separation vs step"),
	))
	fmt.Println()

	final := sep[len(sep)-1]
	fmt.Printf("final separation: %.6g after %d steps (t=%.2f)\n", final, len(sep), float64(len(sep))*cfg.Dt)
	fmt.Printf("growth: %.3g x\n", final/delta)

	if lyapSteps > 0 {
		lambda := analysis.LyapunovExponent(x0, cfg.Dynamo(), lyapSteps, 1e-8)
		fmt.Printf("largest lyapunov exponent: %.4f\n", lambda)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIGMA\tRHO\tBETA\tDT\tSTEPS\tSTART")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		start := fmt.Sprintf("(%g, %g, %g)", p.Initial.X, p.Initial.Y, p.Initial.Z)
		if p.Initial.Random {
			start = fmt.Sprintf("random [1, %d]", p.Initial.Range)
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%.4g\t%g\t%d\t%s\n", name, p.Sigma, p.Rho, p.Beta, p.Dt, p.Steps, start)
	}
	return w.Flush()
}

// spectrumPlotData keeps the lowest quarter of the spectrum, where the
// attractor's power sits.
func spectrumPlotData(ps []float64) ([]float64, error) {
	if len(ps) < 2 {
		return nil, fmt.Errorf("need at least 3 samples for a spectrum, got %d bins", len(ps))
	}
	end := len(ps)/4 + 1
	if end > len(ps) {
		end = len(ps)
	}
	return ps[:end], nil
}

func axisIndex(name string) (int, error) {
	switch name {
	case "x":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		return 2, nil
	}
	return 0, fmt.Errorf("unknown axis %q", name)
}

func component(traj []dynamo.Vector3, i int) []float64 {
	out := make([]float64, len(traj))
	for j, v := range traj {
		switch i {
		case 0:
			out[j] = v.X
		case 1:
			out[j] = v.Y
		default:
			out[j] = v.Z
		}
	}
	return out
}

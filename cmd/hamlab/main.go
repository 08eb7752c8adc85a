package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/hamlab/internal/analysis"
	"github.com/san-kum/hamlab/internal/config"
	"github.com/san-kum/hamlab/internal/experiment"
	"github.com/san-kum/hamlab/internal/hamilton"
	"github.com/san-kum/hamlab/internal/metrics"
	"github.com/san-kum/hamlab/internal/physics"
	"github.com/san-kum/hamlab/internal/sim"
	"github.com/san-kum/hamlab/internal/storage"
	"github.com/san-kum/hamlab/internal/tui"
	"github.com/san-kum/hamlab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	tolerance  float64
	integrator string
	configFile string
	preset     string

	q0     float64
	p0     float64
	theta  float64
	omega  float64
	theta2 float64
	omega2 float64

	numBodies int
	chainLen  int

	// phase plot axes
	xAxis int
	yAxis int

	// spectrum / lyapunov / ensemble knobs
	seriesIdx int
	d0        float64
	numRuns   int
	spread    float64
	seed      int64

	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hamlab",
		Short: "Hamiltonian mechanics lab: symplectic integration and conservation diagnostics",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hamlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a simulation and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	checkCmd := &cobra.Command{
		Use:   "check [model]",
		Short: "run a simulation and report conservation",
		Args:  cobra.ExactArgs(1),
		RunE:  checkConservation,
	}
	addRunFlags(checkCmd)
	checkCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTol, "relative energy drift tolerance")

	compareCmd := &cobra.Command{
		Use:   "compare [model] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same model",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run with live phase portrait and energy view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  runLyapunov,
	}
	addRunFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&d0, "d0", 1e-8, "initial separation")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "run perturbed copies and report their divergence",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	addRunFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 8, "number of ensemble members")
	ensembleCmd.Flags().Float64Var(&spread, "spread", 1e-6, "initial perturbation amplitude")
	ensembleCmd.Flags().Int64Var(&seed, "seed", 1, "perturbation seed")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum of one state component",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&seriesIdx, "index", 0, "state component index")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored state components over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space portrait of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", -1, "state index for y-axis (default: conjugate momentum)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models and integrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := experiment.NewRegistry()
			fmt.Println("models:")
			for _, m := range reg.ListModels() {
				fmt.Printf("  %s\n", m)
			}
			fmt.Println("integrators:")
			for _, i := range reg.ListIntegrators() {
				fmt.Printf("  %s\n", i)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd, compareCmd, liveCmd, lyapunovCmd, ensembleCmd,
		spectrumCmd, listCmd, plotCmd, phaseCmd, exportCmd, exportCSVCmd, presetsCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().StringVar(&integrator, "integrator", "", "integrator (default per model)")
	cmd.Flags().Float64Var(&q0, "q", 1.0, "initial coordinate (harmonic)")
	cmd.Flags().Float64Var(&p0, "p", 0.0, "initial momentum (harmonic)")
	cmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle (double_pendulum)")
	cmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	cmd.Flags().Float64Var(&theta2, "theta2", 0.5, "second angle (double_pendulum)")
	cmd.Flags().Float64Var(&omega2, "omega2", 0.0, "second angular velocity")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies (nbody)")
	cmd.Flags().IntVar(&chainLen, "oscillators", 3, "chain length (chain)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset < config file < changed CLI flags on top of
// the defaults.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Model = model
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("integrator") || cfg.Integrator == "" {
		cfg.Integrator = integrator
	}
	if flags.Changed("q") {
		cfg.InitState.Q = q0
	}
	if flags.Changed("p") {
		cfg.InitState.P = p0
	}
	if flags.Changed("theta") {
		cfg.InitState.Theta = theta
	}
	if flags.Changed("omega") {
		cfg.InitState.Omega = omega
	}
	if flags.Changed("theta2") {
		cfg.InitState.Theta2 = theta2
	}
	if flags.Changed("omega2") {
		cfg.InitState.Omega2 = omega2
	}
	if flags.Changed("bodies") {
		cfg.InitState.NumBodies = numBodies
	}
	if flags.Changed("oscillators") {
		cfg.InitState.ChainLen = chainLen
	}

	if cfg.Integrator == "" {
		// Symplectic by default; the double pendulum's state is not
		// separable, so it falls back to RK4.
		cfg.Integrator = "leapfrog"
		if model == "double_pendulum" {
			cfg.Integrator = "rk4"
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s with %s (dt=%g, time=%gs)...\n", cfg.Model, cfg.Integrator, cfg.Dt, cfg.Duration)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Model, cfg.Integrator, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

// potentialer is implemented by the canonical models; the conservation
// check needs V(q) separately from the full Hamiltonian.
type potentialer interface {
	Potential(q []float64) float64
}

func checkConservation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s / %s, dt=%g over %gs (%d steps)\n",
		cfg.Model, cfg.Integrator, cfg.Dt, cfg.Duration, result.StepsTaken)

	pot, ok := exp.Sys.(potentialer)
	if !ok {
		// Non-canonical state layout: report the Hamiltonian drift the
		// simulator already tracked.
		fmt.Printf("energy drift: %.3e (no canonical split for %s)\n", result.EnergyDrift, cfg.Model)
		return nil
	}

	report, err := metrics.CheckConservation(result.QTraj(), result.PTraj(), modelMasses(exp.Sys), pot.Potential, cfg.Tolerance)
	if err != nil {
		return err
	}
	fmt.Println(report)
	if !report.EnergyConserved {
		fmt.Println("hint: reduce dt or switch to a symplectic integrator (leapfrog)")
	}
	return nil
}

// modelMasses expands per-body masses to per-coordinate masses for the
// conservation check; nil means unit masses.
func modelMasses(sys hamilton.System) []float64 {
	switch s := sys.(type) {
	case *physics.NBody:
		masses := make([]float64, s.N*s.Dim)
		for i := 0; i < s.N; i++ {
			for d := 0; d < s.Dim; d++ {
				masses[i*s.Dim+d] = s.Masses[i]
			}
		}
		return masses
	case *physics.Harmonic:
		return []float64{s.Mass}
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	model := args[0]
	names := args[1:]

	fmt.Printf("comparing integrators for %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tENERGY DRIFT\tFINAL x0\tTIME")

	for _, name := range names {
		cfg, err := resolveConfig(cmd, model)
		if err != nil {
			return err
		}
		cfg.Integrator = name

		exp, err := experiment.New(experiment.NewRegistry(), cfg)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", name, err)
			continue
		}

		finalX0 := 0.0
		if n := len(result.States); n > 0 && len(result.States[n-1]) > 0 {
			finalX0 = result.States[n-1][0]
		}
		fmt.Fprintf(w, "%s\t%.3e\t%.6f\t%v\n", name, result.EnergyDrift, finalX0, elapsed)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}
	x0, err := exp.InitState()
	if err != nil {
		return err
	}
	integ, err := experiment.NewRegistry().GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	return tui.Run(cfg.Model, exp.Sys, integ, x0, cfg.Dt, frameRate)
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}
	x0, err := exp.InitState()
	if err != nil {
		return err
	}
	integ, err := experiment.NewRegistry().GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	lambda := analysis.Lyapunov(exp.Sys, integ, x0, cfg.Dt, cfg.Duration, d0)

	fmt.Printf("largest Lyapunov exponent for %s: %.4f\n", cfg.Model, lambda)
	switch {
	case lambda > 0.1:
		fmt.Println("positive exponent: trajectory is chaotic")
	case lambda < -0.1:
		fmt.Println("negative exponent: trajectory is contracting")
	default:
		fmt.Println("near zero: regular (quasi-periodic) motion")
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	reg := experiment.NewRegistry()
	exp, err := experiment.New(reg, cfg)
	if err != nil {
		return err
	}
	x0, err := exp.InitState()
	if err != nil {
		return err
	}

	newSim := func() *sim.Simulator {
		e, err := experiment.New(reg, cfg)
		if err != nil {
			// Config already validated above.
			panic(err)
		}
		return e.Simulator
	}

	ens := sim.NewEnsemble(newSim, numRuns, seed, spread)
	results, err := ens.Run(context.Background(), x0, sim.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d runs of %s with %s, spread %g\n\n", numRuns, cfg.Model, cfg.Integrator, spread)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tFINAL x0\tENERGY DRIFT\tDIVERGENCE")

	ref := results[0].States[len(results[0].States)-1]
	for i, r := range results {
		final := r.States[len(r.States)-1]
		div := 0.0
		for j := range final {
			d := final[j] - ref[j]
			div += d * d
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.3e\t%.3e\n", i, final[0], r.EnergyDrift, math.Sqrt(div))
	}
	return w.Flush()
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data")
	}
	if seriesIdx >= len(states[0]) {
		return fmt.Errorf("state index %d out of range (dim %d)", seriesIdx, len(states[0]))
	}

	series := make([]float64, len(states))
	for i := range states {
		series[i] = states[i][seriesIdx]
	}

	ps := analysis.PowerSpectrum(series)
	dominant := analysis.DominantFrequency(series, meta.Dt)

	// The long high-frequency tail drowns the peaks at plot scale.
	fmt.Printf("spectrum of %s component %d:\n\n", meta.ID, seriesIdx)
	fmt.Println(viz.SpectrumPlot(ps[:len(ps)/4], dominant, 80, 15))
	if dominant > 0 {
		fmt.Printf("\ndominant angular frequency: %.4f rad/s (period %.3f s)\n", dominant, 2*math.Pi/dominant)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDURATION\tDT\tINTEG\tENERGY DRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%.3e\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.EnergyDrift,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nmodel: %s\nsamples: %d\n\n", meta.ID, meta.Model, len(states))

	dim := len(states[0])
	half := dim / 2
	maxPlots := 6
	if dim > maxPlots {
		dim = maxPlots
	}

	for idx := 0; idx < dim; idx++ {
		series := make([]float64, len(states))
		for i := range states {
			series[i] = states[i][idx]
		}
		label := fmt.Sprintf("q%d", idx)
		if idx >= half {
			label = fmt.Sprintf("p%d", idx-half)
		}
		fmt.Println(viz.SeriesPlot(series, label, 80, 10))
		fmt.Println()
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	y := yAxis
	if y < 0 {
		y = xAxis + len(states[0])/2
	}
	if xAxis >= len(states[0]) || y >= len(states[0]) {
		return fmt.Errorf("state dimension %d too small for axes (%d, %d)", len(states[0]), xAxis, y)
	}

	fmt.Printf("phase portrait: %s (%s), x=%d y=%d\n\n", meta.ID, meta.Model, xAxis, y)
	fmt.Print(viz.PhasePortrait(states, xAxis, y, 60, 20))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	half := len(states[0]) / 2
	for i := 0; i < half; i++ {
		header = append(header, fmt.Sprintf("q%d", i))
	}
	for i := half; i < len(states[0]); i++ {
		header = append(header, fmt.Sprintf("p%d", i-half))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

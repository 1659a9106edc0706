package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/analysis"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/physics"
	"github.com/san-kum/trajsim/internal/sim"
	"github.com/san-kum/trajsim/internal/tui"
	"github.com/san-kum/trajsim/internal/viz"
)

const model = "projectile"

var (
	dt         float64
	duration   float64
	steps      int
	levels     int
	x0         float64
	y0         float64
	vx0        float64
	vy0        float64
	noValidate bool
	configFile string
	preset     string
	// Output
	format    string
	output    string
	frameRate int
)

// main registers the trajsim commands and runs the one named on the
// command line, exiting with status 1 on error.
func main() {
	log.SetFlags(0)
	log.SetPrefix("trajsim: ")

	rootCmd := &cobra.Command{
		Use:          "trajsim",
		Short:        "explicit Euler projectile motion against the exact solution",
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot height and error over time",
		Args:  cobra.NoArgs,
		RunE:  plotRun,
	}
	plotCmd.Flags().Int("width", 80, "plot width")
	plotCmd.Flags().Int("height", 12, "plot height")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "draw the path against the exact path",
		Args:  cobra.NoArgs,
		RunE:  showRun,
	}
	showCmd.Flags().Int("width", 70, "canvas width in cells")
	showCmd.Flags().Int("height", 20, "canvas height in cells")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "halve dt repeatedly and report the final error",
		Args:  cobra.NoArgs,
		RunE:  convergeRun,
	}
	convergeCmd.Flags().IntVar(&levels, "levels", config.DefaultLevels, "number of dt halvings")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export run data (csv, json or svg)",
		Args:  cobra.NoArgs,
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json, svg")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().Int("width", 800, "svg width")
	exportCmd.Flags().Int("height", 500, "svg height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay the run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	for _, c := range []*cobra.Command{runCmd, plotCmd, showCmd, convergeCmd, exportCmd, liveCmd, configCmd} {
		addRunFlags(c)
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, plotCmd, showCmd, convergeCmd, exportCmd, liveCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	f.Float64Var(&duration, "time", config.DefaultDuration, "simulated time (s)")
	f.IntVar(&steps, "steps", 0, "number of samples (overrides --time)")
	f.Float64Var(&x0, "x0", config.DefaultX, "initial x (m)")
	f.Float64Var(&y0, "y0", config.DefaultY, "initial y (m)")
	f.Float64Var(&vx0, "vx0", config.DefaultVX, "initial horizontal velocity (m/s)")
	f.Float64Var(&vy0, "vy0", config.DefaultVY, "initial vertical velocity (m/s)")
	f.BoolVar(&noValidate, "no-validate", false, "skip NaN/Inf checks")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, environment and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("levels") {
		cfg.Levels = levels
	}
	if flags.Changed("x0") {
		cfg.Init.X = x0
	}
	if flags.Changed("y0") {
		cfg.Init.Y = y0
	}
	if flags.Changed("vx0") {
		cfg.Init.VX = vx0
	}
	if flags.Changed("vy0") {
		cfg.Init.VY = vy0
	}
	if noValidate {
		cfg.ValidateState = false
	}

	if cfg.Steps > 0 && flags.Changed("time") {
		log.Printf("--steps %d overrides --time %g", cfg.Steps, cfg.Duration)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// size reads the per-command width and height flags; their defaults
// differ between commands.
func size(cmd *cobra.Command) (int, int) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	return w, h
}

func runName() string {
	if preset != "" {
		return preset
	}
	return "custom"
}

func simulate(cmd *cobra.Command, observers ...dynamo.Observer) (export.Run, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return export.Run{}, err
	}

	simCfg, err := cfg.SimConfig()
	if err != nil {
		return export.Run{}, err
	}

	initial := cfg.InitState()
	s := sim.New()
	for _, o := range observers {
		s.AddObserver(o)
	}
	result, err := s.Run(initial, simCfg)
	if err != nil {
		return export.Run{}, err
	}

	return export.Run{
		Name:    runName(),
		Config:  simCfg,
		Initial: initial,
		Result:  result,
	}, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	drift := metrics.NewEnergyDrift()
	start := time.Now()
	run, err := simulate(cmd, drift)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	c := analysis.Compare(run.Result.Positions, run.Initial.Pos, run.Initial.Vel, run.Config.Dt)
	final := run.Result.Positions.Last()
	exact := c.Reference[len(c.Reference)-1]

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("%s simulation (%s)", model, run.Name)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", len(run.Result.Positions))
	fmt.Fprintf(w, "dt\t%.6g s\n", run.Config.Dt)
	fmt.Fprintf(w, "simulated\t%.6g s\n", run.Result.Elapsed())
	fmt.Fprintf(w, "initial\t%s  v=%s\n", run.Initial.Pos, run.Initial.Vel)
	fmt.Fprintf(w, "final (euler)\t%s  v=%s\n", final, run.Result.Final.Vel)
	fmt.Fprintf(w, "final (exact)\t%s\n", exact)
	fmt.Fprintf(w, "final error\t%.6g m\n", c.FinalError)
	fmt.Fprintf(w, "max error\t%.6g m (step %d)\n", c.MaxError, c.MaxAt)
	fmt.Fprintf(w, "predicted bias\t%.6g m\n", analysis.EulerBias(run.Config.Dt, run.Result.Elapsed()))
	fmt.Fprintf(w, "energy drift\t%.3e (max %.3e at t=%.4g)\n", run.Result.EnergyDrift, drift.Value(), drift.WorstAt())
	fmt.Fprintf(w, "wall time\t%v\n", elapsed)
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	run, err := simulate(cmd)
	if err != nil {
		return err
	}

	c := analysis.Compare(run.Result.Positions, run.Initial.Pos, run.Initial.Vel, run.Config.Dt)
	width, height := size(cmd)

	fmt.Printf("run: %s\n", run.Name)
	fmt.Printf("samples: %d, dt: %g s, a: %g m/s²\n\n", len(run.Result.Positions), run.Config.Dt, physics.Acceleration())

	graph := asciigraph.PlotMany(
		[][]float64{run.Result.Positions.Ys(), c.Reference.Ys()},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Cyan),
		asciigraph.Caption("y (m) vs step: euler (green), exact (cyan)"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(c.Errors,
		asciigraph.Height(height/2+1),
		asciigraph.Width(width),
		asciigraph.Caption("|error| (m) vs step"),
	)
	fmt.Println(graph)

	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	run, err := simulate(cmd)
	if err != nil {
		return err
	}

	ref := analysis.ReferenceAt(run.Initial.Pos, run.Initial.Vel, run.Result.Times)
	width, height := size(cmd)

	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("trajectory: %s", run.Name)))
	fmt.Printf("v0=%s  t=%.4g s\n\n", run.Initial.Vel, run.Result.Elapsed())
	fmt.Print(viz.RenderComparison(width, height, run.Result.Positions, ref, nil))
	return nil
}

func convergeRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	total := cfg.Duration
	if cfg.Steps > 0 {
		total = float64(cfg.Steps-1) * cfg.Dt
	}

	initial := cfg.InitState()
	study, err := analysis.Convergence(initial.Pos, initial.Vel, total, cfg.Dt, cfg.Levels)
	if err != nil {
		return err
	}

	fmt.Printf("convergence over %.4g s from %s, v0=%s\n\n", study.Total, initial.Pos, initial.Vel)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tELAPSED\tERROR\tORDER")
	for _, l := range study.Levels {
		order := "-"
		if !math.IsNaN(l.Order) {
			order = fmt.Sprintf("%.3f", l.Order)
		}
		fmt.Fprintf(w, "%.6g\t%d\t%.6g\t%.6e\t%s\n", l.Dt, l.Steps, l.Elapsed, l.Error, order)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	if order := study.ObservedOrder(); !math.IsNaN(order) {
		fmt.Printf("observed order: %.3f\n", order)
	}
	if study.Monotone() {
		fmt.Println(viz.StatusRunning.Render("error decreases at every level"))
	} else {
		fmt.Println(viz.StatusPaused.Render("error did not decrease at every level"))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	run, err := simulate(cmd)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		err = export.WriteCSV(w, run)
	case "json":
		err = export.WriteJSON(w, run)
	case "svg":
		width, height := size(cmd)
		err = export.WriteSVG(w, run, width, height)
	default:
		return fmt.Errorf("unknown format: %s (want csv, json or svg)", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	if output != "" {
		log.Printf("wrote %s", output)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	run, err := simulate(cmd)
	if err != nil {
		return err
	}

	ref := analysis.ReferenceAt(run.Initial.Pos, run.Initial.Vel, run.Result.Times)
	return tui.Run(tui.NewModel(run.Name, run.Result, ref, frameRate))
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	path := "trajsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(model)
	if len(presets) == 0 {
		fmt.Printf("no presets for model: %s\n", model)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tDT\tTIME\tX0\tY0\tVX0\tVY0")
	for _, name := range presets {
		p := config.GetPreset(model, name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\n",
			name, p.Dt, p.Duration, p.Init.X, p.Init.Y, p.Init.VX, p.Init.VY)
	}
	return w.Flush()
}

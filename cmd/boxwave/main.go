package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/boxwave/internal/analysis"
	"github.com/san-kum/boxwave/internal/config"
	"github.com/san-kum/boxwave/internal/engine"
	"github.com/san-kum/boxwave/internal/export"
	"github.com/san-kum/boxwave/internal/gui"
	"github.com/san-kum/boxwave/internal/logx"
	"github.com/san-kum/boxwave/internal/metrics"
	"github.com/san-kum/boxwave/internal/sim"
	"github.com/san-kum/boxwave/internal/storage"
	"github.com/san-kum/boxwave/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string

	gridSize  int
	spacing   float64
	amplitude float64
	baseColor string
	duration  float64
	step      float64
	fps       int
	axes      bool

	traceCell    int
	traceSeconds float64
	traceRate    int
	traceTrigger float64
	tracePhase   bool
	traceSave    bool
	traceSVG     string
	tracePlot    string

	dataDir  string
	snapTime float64
	snapCols int
	snapRows int
	snapOut  string
)

// main registers the commands and opens the window when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "boxwave",
		Short:         "a wave of boxes that spins on demand",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&dataDir, "data", ".boxwave", "directory for saved traces")
	pf.IntVar(&gridSize, "grid", config.DefaultGridSize, "boxes per side")
	pf.Float64Var(&spacing, "spacing", config.DefaultSpacing, "distance between box centers")
	pf.Float64Var(&amplitude, "amplitude", config.DefaultWaveAmplitude, "wave amplitude")
	pf.StringVar(&baseColor, "color", config.DefaultBaseColor, "base color (#rrggbb)")
	pf.Float64Var(&duration, "duration", config.DefaultDuration, "seconds per box rotation")
	pf.Float64Var(&step, "step", config.DefaultStep, "stagger step in seconds")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "render frame rate")
	pf.BoolVar(&axes, "axes", false, "draw the world axes")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the grid in a window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw the grid in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs here instead of dropping them")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "sample one box headlessly and plot it",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceCell, "cell", 0, "cell index")
	traceCmd.Flags().Float64Var(&traceSeconds, "seconds", 12, "simulated seconds")
	traceCmd.Flags().IntVar(&traceRate, "rate", 60, "samples per second")
	traceCmd.Flags().Float64Var(&traceTrigger, "trigger", 2, "rotate at this time, negative for never")
	traceCmd.Flags().BoolVar(&tracePhase, "phase", false, "also draw the height phase portrait")
	traceCmd.Flags().BoolVar(&traceSave, "save", false, "store the trace under --data")
	traceCmd.Flags().StringVar(&traceSVG, "svg", "", "write the phase portrait to this SVG file")
	traceCmd.Flags().StringVar(&tracePlot, "plot", "", "write a plot image (png, svg or pdf)")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved traces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset...]",
		Short: "trace every preset in parallel and compare",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&traceCell, "cell", 0, "cell index")
	sweepCmd.Flags().Float64Var(&traceSeconds, "seconds", 12, "simulated seconds")
	sweepCmd.Flags().IntVar(&traceRate, "rate", 60, "samples per second")
	sweepCmd.Flags().Float64Var(&traceTrigger, "trigger", 2, "rotate at this time, negative for never")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&snapTime, "time", 0, "wave time in seconds")
	snapshotCmd.Flags().IntVar(&snapCols, "cols", 100, "canvas width in characters")
	snapshotCmd.Flags().IntVar(&snapRows, "rows", 40, "canvas height in characters")
	snapshotCmd.Flags().StringVar(&snapOut, "out", "boxwave.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, traceCmd, sweepCmd, runsCmd, plotCmd, snapshotCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers preset, file and explicitly set flags, then validates.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.Scene.GridSize = gridSize
	}
	if flags.Changed("spacing") {
		cfg.Scene.Spacing = spacing
	}
	if flags.Changed("amplitude") {
		cfg.Scene.WaveAmplitude = amplitude
	}
	if flags.Changed("color") {
		cfg.Scene.BaseColor = baseColor
	}
	if flags.Changed("duration") {
		cfg.Flourish.Duration = duration
	}
	if flags.Changed("step") {
		cfg.Flourish.Step = step
	}
	if flags.Changed("fps") {
		cfg.Renderer.FPS = fps
	}
	if flags.Changed("axes") {
		cfg.Renderer.Axes = axes
	}
	return cfg, cfg.Validate()
}

func newEngine(cmd *cobra.Command, logger *slog.Logger) (*engine.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return engine.New(cfg, logger, nil)
}

func runGUI(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd, logx.New(os.Stderr, logLevel))
	if err != nil {
		return err
	}
	return gui.Run(cmd.Context(), eng)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger := logx.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logx.New(f, logLevel)
	}

	if preset == "" && configFile == "" {
		factory := func(name string) (*engine.Engine, error) {
			preset = name
			return newEngine(cmd, logger)
		}
		return viz.RunPicker(cmd.Context(), config.ListPresets(), factory)
	}

	eng, err := newEngine(cmd, logger)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), eng)
}

func runTrace(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd, logx.New(os.Stderr, logLevel))
	if err != nil {
		return err
	}
	tr, err := analysis.Record(eng, analysis.Options{
		Cell:      traceCell,
		Seconds:   traceSeconds,
		Rate:      traceRate,
		TriggerAt: traceTrigger,
	})
	if err != nil {
		return err
	}

	freq, err := plotTrace(tr)
	if err != nil {
		return err
	}
	figures := metrics.Evaluate(tr, metrics.Default(eng.Config().Scene.WaveAmplitude)...)
	printMetrics(figures)
	figures["frequency"] = freq

	pp := analysis.NewPhasePortrait(tr)
	if tracePhase {
		fmt.Println()
		fmt.Println(pp.ASCII(60, 20))
	}
	if traceSVG != "" && pp != nil {
		if err := os.WriteFile(traceSVG, []byte(export.TrajectoryToSVG(pp.Points, 600, 400, "#00ffff")), 0644); err != nil {
			return err
		}
		fmt.Printf("phase portrait: %s\n", traceSVG)
	}

	if tracePlot != "" {
		if err := export.PlotTrace(tr, tracePlot); err != nil {
			return err
		}
		fmt.Printf("plot: %s\n", tracePlot)
	}

	if traceSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(preset, traceTrigger, tr, figures)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", runID)
	}
	return nil
}

// plotTrace prints the trace's plots and returns its dominant frequency.
func plotTrace(tr *analysis.Trace) (float64, error) {
	fmt.Printf("cell: %d (row %d, col %d)\n", tr.Cell, tr.Row, tr.Col)
	fmt.Printf("samples: %d @ %.0f hz\n\n", tr.Len(), tr.Rate)
	if tr.Len() == 0 {
		return 0, fmt.Errorf("no data to plot")
	}

	plots := []struct {
		data    []float64
		caption string
	}{
		{tr.Heights, "height (y)"},
		{tr.RotX, "rotation x (rad)"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	hs := analysis.Summarize(tr.Heights)
	fmt.Printf("height: mean %.3f  std %.3f  range [%.3f, %.3f]\n", hs.Mean, hs.StdDev, hs.Min, hs.Max)

	freq, err := analysis.DominantFrequency(tr.Heights, tr.Rate)
	if err != nil {
		return 0, err
	}
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return freq, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tCELL\tSAMPLES\tFREQ (hz)\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%s\n",
			r.ID, r.Preset, r.Cell, r.Samples, r.Metrics["frequency"], r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	if _, err := plotTrace(tr); err != nil {
		return err
	}
	printMetrics(meta.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %.4f\n", name, m[name])
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	presets := args
	if len(presets) == 0 {
		presets = config.ListPresets()
	}
	build := func(name string) (*engine.Engine, error) {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", name)
		}
		return engine.New(cfg, nil, nil)
	}
	opts := analysis.Options{Cell: traceCell, Seconds: traceSeconds, Rate: traceRate, TriggerAt: traceTrigger}

	results, err := sim.NewEnsemble(build, presets, opts).Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tFREQ (hz)\tENERGY\tSTABILITY\tTURN (rad)\tCYCLE (s)")
	for _, r := range results {
		m := r.Metrics
		fmt.Fprintf(w, "%s\t%.3f\t%.4f\t%.3f\t%.3f\t%.2f\n",
			r.Preset, m["frequency"], m["energy"], m["stability"], m["turn"], m["flourish_seconds"])
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd, logx.New(os.Stderr, logLevel))
	if err != nil {
		return err
	}
	canvas, err := export.Snapshot(eng, snapTime, snapCols, snapRows)
	if err != nil {
		return err
	}
	bg, err := eng.Config().ClearColor()
	if err != nil {
		return err
	}
	if err := os.WriteFile(snapOut, []byte(export.CanvasToSVG(canvas, 4, bg)), 0644); err != nil {
		return err
	}
	fmt.Printf("snapshot: %s\n", snapOut)
	return nil
}

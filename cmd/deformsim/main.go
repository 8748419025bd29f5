package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/deformsim/internal/analysis"
	"github.com/san-kum/deformsim/internal/automation"
	"github.com/san-kum/deformsim/internal/config"
	"github.com/san-kum/deformsim/internal/continuum"
	"github.com/san-kum/deformsim/internal/export"
	"github.com/san-kum/deformsim/internal/metrics"
	"github.com/san-kum/deformsim/internal/sim"
	"github.com/san-kum/deformsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string

	duration float64
	step     float64
	centerX  float64
	centerY  float64
	radius   float64
	points   int
	grid     int

	svgPath  string
	csvPath  string
	jsonPath string

	chartPoint  int
	plotWidth   int
	plotHeight  int
	streamlines bool
	quiet       bool

	outDir     string
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// main registers the body, field, browse, scenario, sweep, presets and
// config commands and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "deformsim",
		Short:         "deformation of an elastic body under a prescribed velocity field",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or ini)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&duration, "time", config.DefaultTime, "total simulation time")
	rootCmd.PersistentFlags().Float64Var(&step, "step", config.DefaultStep, "integration step")
	rootCmd.PersistentFlags().IntVar(&plotWidth, "width", 60, "plot width in cells")
	rootCmd.PersistentFlags().IntVar(&plotHeight, "height", 20, "plot height in cells")

	bodyCmd := &cobra.Command{
		Use:   "body",
		Short: "track material points of the body",
		Args:  cobra.NoArgs,
		RunE:  runBody,
	}
	bodyCmd.Flags().Float64Var(&centerX, "x", config.DefaultX, "body center x")
	bodyCmd.Flags().Float64Var(&centerY, "y", config.DefaultY, "body center y")
	bodyCmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "body radius")
	bodyCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of material points")
	bodyCmd.Flags().IntVar(&chartPoint, "chart-point", 0, "point whose coordinates are charted")
	bodyCmd.Flags().StringVar(&svgPath, "svg", "", "write trajectory plot as SVG")
	bodyCmd.Flags().StringVar(&csvPath, "csv", "", "write trajectories as CSV")
	bodyCmd.Flags().StringVar(&jsonPath, "json", "", "write trajectories as JSON")
	bodyCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip terminal plots")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "sample the velocity field on a fixed grid",
		Args:  cobra.NoArgs,
		RunE:  runField,
	}
	fieldCmd.Flags().IntVar(&grid, "grid", config.DefaultGrid, "grid half-extent")
	fieldCmd.Flags().BoolVar(&streamlines, "streamlines", true, "overlay analytic streamlines")
	fieldCmd.Flags().StringVar(&svgPath, "svg", "", "write one SVG per snapshot, numbered before the extension")
	fieldCmd.Flags().StringVar(&csvPath, "csv", "", "write snapshots as CSV")
	fieldCmd.Flags().StringVar(&jsonPath, "json", "", "write snapshots as JSON")
	fieldCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "skip terminal plots")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse field snapshots interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
	browseCmd.Flags().IntVar(&grid, "grid", config.DefaultGrid, "grid half-extent")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s time=%g step=%g center=(%g, %g) points=%d grid=%d\n",
					name, p.Run.Time, p.Run.Step, p.Body.X, p.Body.Y, p.Body.Points, p.Field.Grid)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of body and field steps",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "out", ".", "directory for step outputs")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "track the body across a range of one parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "radius", "parameter to sweep (time, step, x, y, radius)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "first parameter value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2, "last parameter value")
	sweepCmd.Flags().IntVar(&sweepSteps, "n", 4, "number of parameter values")

	rootCmd.AddCommand(bodyCmd, fieldCmd, browseCmd, scenarioCmd, sweepCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("time") {
		cfg.Run.Time = duration
	}
	if flags.Changed("step") {
		cfg.Run.Step = step
	}
	if flags.Changed("x") {
		cfg.Body.X = centerX
	}
	if flags.Changed("y") {
		cfg.Body.Y = centerY
	}
	if flags.Changed("radius") {
		cfg.Body.Radius = radius
	}
	if flags.Changed("points") {
		cfg.Body.Points = points
	}
	if flags.Changed("grid") {
		cfg.Field.Grid = grid
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBody(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if chartPoint < 0 || chartPoint >= cfg.Body.Points {
		return fmt.Errorf("chart point %d outside [0, %d): %w", chartPoint, cfg.Body.Points, continuum.ErrInvalidCount)
	}

	body := sim.CircleBody(cfg.Body.X, cfg.Body.Y, cfg.Body.Radius, cfg.Body.Points)

	fmt.Printf("tracking %d points...\n", body.Len())
	start := time.Now()
	traj := sim.TrackBody(cfg.Run.Time, cfg.Run.Step, body)
	elapsed := time.Since(start)

	values := metrics.Evaluate(traj, cfg.Run.Step, metrics.Default()...)
	rows := []viz.Row{
		{Label: "points", Value: fmt.Sprintf("%d", traj.Len())},
		{Label: "samples", Value: fmt.Sprintf("%d", traj.Samples())},
		{Label: "elapsed", Value: elapsed.String()},
	}
	for _, name := range metrics.Names(values) {
		rows = append(rows, viz.Row{Label: name, Value: fmt.Sprintf("%.6f", values[name])})
	}
	if aff, err := metrics.DeformationGradient(traj, traj.Samples()-1); err == nil {
		rows = append(rows,
			viz.Row{Label: "F", Value: fmt.Sprintf("[%.4f %.4f; %.4f %.4f]", aff.F.At(0, 0), aff.F.At(0, 1), aff.F.At(1, 0), aff.F.At(1, 1))},
			viz.Row{Label: "det F", Value: fmt.Sprintf("%.6f", aff.Det())},
		)
	}
	fmt.Println(viz.Summary("body trajectory", rows))

	if !quiet {
		fmt.Println()
		fmt.Print(viz.TrajectoryCanvas(traj, plotWidth, plotHeight).Render(viz.Paint))
		fmt.Println()
		fmt.Println(viz.CoordinateChart(traj.Points[chartPoint], plotWidth, 10))
		fmt.Println()
		fmt.Println(viz.SeriesChart(metrics.History(traj), "enclosed area", plotWidth, 6))
	}

	if svgPath != "" {
		if err := export.ToFile(svgPath, func(w io.Writer) error {
			return export.TrajectorySVG(w, traj, 800, 800)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if csvPath != "" {
		if err := export.ToFile(csvPath, func(w io.Writer) error {
			return export.TrajectoryCSV(w, traj)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.ToFile(jsonPath, func(w io.Writer) error {
			return export.TrajectoryJSON(w, cfg.Run.Time, cfg.Run.Step, traj, values)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("sampling %dx%d grid...\n", cfg.GridSide(), cfg.GridSide())
	fields := sim.SampleField(cfg.Run.Time, cfg.Run.Step, cfg.Field.Grid)
	extent := float64(cfg.Field.Grid)

	for i, g := range fields {
		var curves []analysis.Curve
		if streamlines {
			// undefined at t = 0; the snapshot is drawn without guides
			if c, err := analysis.Streamlines(g.Time(), extent, analysis.StreamlineCount, analysis.StreamlineSamples); err == nil {
				curves = c
			}
		}

		if !quiet {
			fmt.Println(viz.Summary(fmt.Sprintf("snapshot %d/%d", i+1, len(fields)), []viz.Row{
				{Label: "current time", Value: fmt.Sprintf("%g", g.Time())},
				{Label: "max speed", Value: fmt.Sprintf("%.4f", g.MaxSpeed())},
			}))
			fmt.Print(viz.FieldCanvas(g, curves, plotWidth, plotHeight).Render(viz.Paint))
			fmt.Println()
		}

		if svgPath != "" {
			path := numberedPath(svgPath, i)
			if err := export.ToFile(path, func(w io.Writer) error {
				return export.FieldSVG(w, g, curves, 600, 600)
			}); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
	}

	if len(fields) > 1 && !quiet {
		fmt.Println(viz.SeriesChart(viz.SpeedHistory(fields), "max speed per snapshot", plotWidth, 6))
	}

	if csvPath != "" {
		if err := export.ToFile(csvPath, func(w io.Writer) error {
			return export.FieldCSV(w, fields)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.ToFile(jsonPath, func(w io.Writer) error {
			return export.FieldJSON(w, fields)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunBrowser(sim.SampleField(cfg.Run.Time, cfg.Run.Step, cfg.Field.Grid))
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if scenario.Name != "" {
		fmt.Printf("scenario %s: %s\n", scenario.Name, scenario.Description)
	}

	results, err := automation.RunScenario(scenario, outDir, os.Stdout)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tKIND\tSAMPLES\tOUTPUT")
	for _, r := range results {
		out := r.Output
		if out == "" {
			out = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Name, r.Kind, r.Samples, out)
	}
	return tw.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(&automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
	}, nil)
	if err != nil {
		return err
	}

	names := metrics.Names(results[0].Metrics)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tX0 FINAL\tY0 FINAL", strings.ToUpper(sweepParam))
	for _, n := range names {
		fmt.Fprintf(tw, "\t%s", n)
	}
	fmt.Fprintln(tw)
	for _, r := range results {
		fmt.Fprintf(tw, "%.4g\t%.6f\t%.6f", r.ParamValue, r.FinalX, r.FinalY)
		for _, n := range names {
			fmt.Fprintf(tw, "\t%.6f", r.Metrics[n])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// numberedPath turns field.svg into field_003.svg.
func numberedPath(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(path, ext), i, ext)
}

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/polarlab/internal/analysis"
	"github.com/san-kum/polarlab/internal/config"
	"github.com/san-kum/polarlab/internal/curves"
	"github.com/san-kum/polarlab/internal/export"
	"github.com/san-kum/polarlab/internal/polar"
	"github.com/san-kum/polarlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	paramFlags []string
	samples    int
	frames     int
	fps        int
	noLoop     bool
	theme      string
	// Config file
	configFile string
	// Preset name
	preset string
	// Export dimensions
	svgWidth  int
	svgHeight int
	svgStroke string
	dots      bool
	verbose   bool
)

// main is the entry point for the polarlab CLI; it registers commands and
// flags, launches the interactive explorer when no subcommand is provided,
// and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "polarlab",
		Short: "polar equation visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			return viz.RunExplorer(curves.Catalog(), cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log warnings to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			polar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		}
	}

	addSessionFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "parameter value, name=value (repeatable)")
		cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples along the curve")
		cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "animation frames")
		cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		cmd.Flags().BoolVar(&noLoop, "no-loop", false, "stop at the last frame instead of looping")
		cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	traceCmd := &cobra.Command{
		Use:   "trace [equation]",
		Short: "animate a curve being traced",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	addSessionFlags(traceCmd)

	renderCmd := &cobra.Command{
		Use:   "render [equation]",
		Short: "print the full curve once",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addSessionFlags(renderCmd)

	profileCmd := &cobra.Command{
		Use:   "profile [equation]",
		Short: "radius profile and curve diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	addSessionFlags(profileCmd)

	equationsCmd := &cobra.Command{
		Use:   "equations",
		Short: "list supported equations",
		RunE:  listEquations,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [equation]",
		Short: "list available presets for an equation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for equation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [equation]",
		Short: "export curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addSessionFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 800, "image height")
	exportSVGCmd.Flags().StringVar(&svgStroke, "stroke", "#00ff00", "stroke color")
	exportSVGCmd.Flags().BoolVar(&dots, "dots", false, "export the terminal dot rendering instead of a smooth path")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [equation]",
		Short: "export sampled points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	addSessionFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [equation]",
		Short: "export sampled points to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	addSessionFlags(exportJSONCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [equation]",
		Short: "benchmark curve evaluation",
		Args:  cobra.ExactArgs(1),
		RunE:  benchEquation,
	}
	addSessionFlags(benchCmd)

	rootCmd.AddCommand(traceCmd, renderCmd, profileCmd, equationsCmd, presetsCmd, exportSVGCmd, exportCSVCmd, exportJSONCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, preset, config file and flags, in that
// order of increasing precedence. CLI flags win only when actually set.
func resolveConfig(cmd *cobra.Command, equation string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if equation != "" {
		cfg.Equation = equation
	}

	if preset != "" {
		p := config.GetPreset(cfg.Equation, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Equation))
		}
		cfg.Samples = p.Samples
		cfg.Frames = p.Frames
		cfg.FPS = p.FPS
		cfg.Loop = p.Loop
		for name, v := range p.Params {
			cfg.Params[name] = v
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if equation == "" {
			cfg.Equation = fileCfg.Equation
		}
		if !cmd.Flags().Changed("samples") {
			cfg.Samples = fileCfg.Samples
		}
		if !cmd.Flags().Changed("frames") {
			cfg.Frames = fileCfg.Frames
		}
		if !cmd.Flags().Changed("fps") {
			cfg.FPS = fileCfg.FPS
		}
		if !cmd.Flags().Changed("no-loop") {
			cfg.Loop = fileCfg.Loop
		}
		if !cmd.Flags().Changed("theme") {
			cfg.Theme = fileCfg.Theme
		}
		for name, v := range fileCfg.Params {
			cfg.Params[name] = v
		}
	}

	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("frames") {
		cfg.Frames = frames
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("no-loop") {
		cfg.Loop = !noLoop
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}

	flagParams, err := parseParams(paramFlags)
	if err != nil {
		return nil, err
	}
	for name, v := range flagParams {
		cfg.Params[name] = v
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseParams turns repeated name=value flags into a parameter map.
func parseParams(flags []string) (polar.Params, error) {
	p := polar.Params{}
	for _, f := range flags {
		name, valStr, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", f)
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --param %q: %w", f, err)
		}
		p[name] = val
	}
	return p, nil
}

// buildSeries resolves the equation and evaluates the full curve for
// non-interactive commands. Parameters are validated strictly here, unlike
// the TUI path which clamps.
func buildSeries(cfg *config.Config) (polar.Equation, polar.Params, polar.Series, error) {
	eq, err := curves.Catalog().Lookup(cfg.Equation)
	if err != nil {
		return nil, nil, nil, err
	}

	params := polar.Defaults(eq.ParamDefs())
	for name, v := range cfg.Params {
		params[name] = v
	}
	if err := polar.Validate(eq.ParamDefs(), params); err != nil {
		return nil, nil, nil, err
	}

	d := eq.DefaultDomain(params)
	d.Samples = cfg.Samples
	series, err := polar.Evaluate(eq, params, d)
	if err != nil {
		return nil, nil, nil, err
	}
	return eq, params, series, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, err := curves.Catalog().Lookup(cfg.Equation)
	if err != nil {
		return err
	}
	params := polar.Defaults(eq.ParamDefs())
	for name, v := range cfg.Params {
		params[name] = v
	}
	if err := polar.Validate(eq.ParamDefs(), params); err != nil {
		return err
	}

	viz.SetTheme(cfg.Theme)
	m := viz.NewTraceModel(eq, params, cfg.Samples, cfg.Frames, cfg.FPS, cfg.Loop)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, params, _, err := buildSeries(cfg)
	if err != nil {
		return err
	}

	m := viz.NewTraceModel(eq, params, cfg.Samples, 1, cfg.FPS, false)
	fmt.Print(m.Render())
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, params, series, err := buildSeries(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("equation: %s\n", eq.Name())
	fmt.Printf("formula: %s\n", eq.Formula())
	fmt.Print("params:")
	for _, def := range eq.ParamDefs() {
		fmt.Printf(" %s=%.2f", def.Name, params[def.Name])
	}
	fmt.Printf("\nsamples: %d\n\n", len(series))

	graph := asciigraph.Plot(series.Radii(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("r(θ)"),
	)
	fmt.Println(graph)
	fmt.Println()

	rMin, rMax := analysis.RadiusBounds(series)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "radius range\t[%.4f, %.4f]\n", rMin, rMax)
	fmt.Fprintf(w, "extent\t%.4f\n", analysis.Extent(series))
	fmt.Fprintf(w, "arc length\t%.4f\n", analysis.ArcLength(series))
	fmt.Fprintf(w, "zero crossings\t%d\n", analysis.ZeroCrossings(series))
	fmt.Fprintf(w, "closed\t%v\n", analysis.Closed(series, 1e-6))
	return w.Flush()
}

func listEquations(cmd *cobra.Command, args []string) error {
	reg := curves.Catalog()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMULA\tPARAMS")

	for _, name := range reg.Names() {
		eq, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		defs := eq.ParamDefs()
		parts := make([]string, len(defs))
		for i, def := range defs {
			parts[i] = fmt.Sprintf("%s=%g [%g, %g]", def.Name, def.Default, def.Min, def.Max)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, eq.Formula(), strings.Join(parts, ", "))
	}

	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, params, series, err := buildSeries(cfg)
	if err != nil {
		return err
	}

	if dots {
		m := viz.NewTraceModel(eq, params, cfg.Samples, 1, cfg.FPS, false)
		fmt.Println(export.CanvasToSVG(m.Canvas(), 4))
		return nil
	}
	fmt.Println(export.SeriesToSVG(series, svgWidth, svgHeight, svgStroke))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	_, _, series, err := buildSeries(cfg)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"theta", "r", "x", "y"}); err != nil {
		return err
	}
	for _, p := range series {
		row := []string{
			strconv.FormatFloat(p.Theta, 'f', 6, 64),
			strconv.FormatFloat(p.R, 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, params, series, err := buildSeries(cfg)
	if err != nil {
		return err
	}

	out := struct {
		Equation string       `json:"equation"`
		Formula  string       `json:"formula"`
		Params   polar.Params `json:"params"`
		Samples  int          `json:"samples"`
		Points   polar.Series `json:"points"`
	}{
		Equation: eq.Name(),
		Formula:  eq.Formula(),
		Params:   params,
		Samples:  len(series),
		Points:   series,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func benchEquation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eq, err := curves.Catalog().Lookup(cfg.Equation)
	if err != nil {
		return err
	}
	params := polar.Defaults(eq.ParamDefs())
	for name, v := range cfg.Params {
		params[name] = v
	}

	sampleCounts := []int{360, 720, 1440, 2880, 5760}
	const rounds = 200

	fmt.Printf("benchmarking %s\n\n", eq.Name())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLES\tROUNDS\tTIME\tPOINTS/SEC")

	for _, n := range sampleCounts {
		d := eq.DefaultDomain(params)
		d.Samples = n

		start := time.Now()
		for i := 0; i < rounds; i++ {
			if _, err := polar.Evaluate(eq, params, d); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		pointsPerSec := float64(n*rounds) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, rounds, elapsed, pointsPerSec)
	}

	return w.Flush()
}

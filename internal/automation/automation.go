package automation

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/deformsim/internal/config"
	"github.com/san-kum/deformsim/internal/export"
	"github.com/san-kum/deformsim/internal/metrics"
	"github.com/san-kum/deformsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of runs sharing one base config.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single body or field run. Unset overrides keep the
// scenario's base values.
type ScenarioStep struct {
	Name      string    `yaml:"name"`
	Kind      string    `yaml:"kind"`
	Overrides Overrides `yaml:"overrides"`
	SaveAs    string    `yaml:"save_as"`
}

type Overrides struct {
	Time   *float64 `yaml:"time"`
	Step   *float64 `yaml:"step"`
	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
	Radius *float64 `yaml:"radius"`
	Points *int     `yaml:"points"`
	Grid   *int     `yaml:"grid"`
}

func (o Overrides) Apply(cfg *config.Config) {
	if o.Time != nil {
		cfg.Run.Time = *o.Time
	}
	if o.Step != nil {
		cfg.Run.Step = *o.Step
	}
	if o.X != nil {
		cfg.Body.X = *o.X
	}
	if o.Y != nil {
		cfg.Body.Y = *o.Y
	}
	if o.Radius != nil {
		cfg.Body.Radius = *o.Radius
	}
	if o.Points != nil {
		cfg.Body.Points = *o.Points
	}
	if o.Grid != nil {
		cfg.Field.Grid = *o.Grid
	}
}

const (
	KindBody  = "body"
	KindField = "field"
)

// StepResult summarizes one executed step.
type StepResult struct {
	Name    string
	Kind    string
	Samples int
	Metrics map[string]float64
	Output  string
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes all steps in order. SaveAs paths are written below
// outDir; the extension picks the format (.csv, .json or .svg). Progress
// lines go to progress when it is non-nil.
func RunScenario(scenario *Scenario, outDir string, progress io.Writer) ([]StepResult, error) {
	base := config.DefaultConfig()
	if scenario.Preset != "" {
		if base = config.GetPreset(scenario.Preset); base == nil {
			return nil, fmt.Errorf("scenario %s: unknown preset %q", scenario.Name, scenario.Preset)
		}
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		if progress != nil {
			fmt.Fprintf(progress, "Running step %d/%d: %s (%s)\n", i+1, len(scenario.Steps), step.Name, step.Kind)
		}

		cfg := *base
		step.Overrides.Apply(&cfg)
		if err := cfg.Validate(); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := runStep(step, &cfg, outDir)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(step ScenarioStep, cfg *config.Config, outDir string) (StepResult, error) {
	res := StepResult{Name: step.Name, Kind: step.Kind}
	if step.SaveAs != "" {
		res.Output = filepath.Join(outDir, step.SaveAs)
	}

	switch step.Kind {
	case KindBody:
		body := sim.CircleBody(cfg.Body.X, cfg.Body.Y, cfg.Body.Radius, cfg.Body.Points)
		traj := sim.TrackBody(cfg.Run.Time, cfg.Run.Step, body)
		res.Samples = traj.Samples()
		res.Metrics = metrics.Evaluate(traj, cfg.Run.Step, metrics.Default()...)
		if res.Output == "" {
			return res, nil
		}
		return res, export.ToFile(res.Output, func(w io.Writer) error {
			switch filepath.Ext(res.Output) {
			case ".json":
				return export.TrajectoryJSON(w, cfg.Run.Time, cfg.Run.Step, traj, res.Metrics)
			case ".svg":
				return export.TrajectorySVG(w, traj, 800, 800)
			default:
				return export.TrajectoryCSV(w, traj)
			}
		})

	case KindField:
		fields := sim.SampleField(cfg.Run.Time, cfg.Run.Step, cfg.Field.Grid)
		res.Samples = len(fields)
		if res.Output == "" {
			return res, nil
		}
		return res, export.ToFile(res.Output, func(w io.Writer) error {
			switch filepath.Ext(res.Output) {
			case ".json":
				return export.FieldJSON(w, fields)
			case ".svg":
				return export.FieldSVG(w, fields[len(fields)-1], nil, 600, 600)
			default:
				return export.FieldCSV(w, fields)
			}
		})
	}

	return res, fmt.Errorf("unknown step kind %q", step.Kind)
}

// ParameterSweep runs the body pipeline across evenly spaced values of one
// parameter.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds the metrics of one sweep point.
type SweepResult struct {
	ParamValue float64
	FinalX     float64
	FinalY     float64
	Metrics    map[string]float64
}

// RunSweep executes a parameter sweep. Valid parameter names are time,
// step, x, y and radius.
func RunSweep(sweep *ParameterSweep, progress io.Writer) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	base := sweep.Base
	if base == nil {
		base = config.DefaultConfig()
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := *base
		if err := setParam(&cfg, sweep.ParamName, paramVal); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		body := sim.CircleBody(cfg.Body.X, cfg.Body.Y, cfg.Body.Radius, cfg.Body.Points)
		traj := sim.TrackBody(cfg.Run.Time, cfg.Run.Step, body)
		fx, fy := traj.Points[0].Final()

		results = append(results, SweepResult{
			ParamValue: paramVal,
			FinalX:     fx,
			FinalY:     fy,
			Metrics:    metrics.Evaluate(traj, cfg.Run.Step, metrics.Default()...),
		})

		if progress != nil {
			fmt.Fprintf(progress, "Sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
		}
	}

	return results, nil
}

func setParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "time":
		cfg.Run.Time = v
	case "step":
		cfg.Run.Step = v
	case "x":
		cfg.Body.X = v
	case "y":
		cfg.Body.Y = v
	case "radius":
		cfg.Body.Radius = v
	default:
		return fmt.Errorf("unknown sweep parameter %q", name)
	}
	return nil
}

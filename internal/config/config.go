package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/deformsim/internal/continuum"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultX      = 2.0
	DefaultY      = -2.0
	DefaultRadius = 1.0
	DefaultTime   = 1.0
	DefaultStep   = 0.1
	DefaultPoints = 100
	DefaultGrid   = 5

	// MaxSteps bounds StepCount(time, step) for a single run.
	MaxSteps = 1_000_000
	// MaxGrid bounds the grid half-extent.
	MaxGrid = 500
)

// Config holds the scalar parameters of both pipelines. The same layout is
// read from YAML or from INI-style files with [run], [body] and [field]
// sections.
type Config struct {
	Run   RunConfig   `yaml:"run"`
	Body  BodyConfig  `yaml:"body"`
	Field FieldConfig `yaml:"field"`
}

type RunConfig struct {
	Time float64 `yaml:"time"`
	Step float64 `yaml:"step"`
}

type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

type FieldConfig struct {
	Grid int `yaml:"grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Time: DefaultTime,
			Step: DefaultStep,
		},
		Body: BodyConfig{
			X:      DefaultX,
			Y:      DefaultY,
			Radius: DefaultRadius,
			Points: DefaultPoints,
		},
		Field: FieldConfig{
			Grid: DefaultGrid,
		},
	}
}

// Load reads path on top of the defaults. Files ending in .ini, .cfg or
// .gcfg are parsed as INI, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if isINI(path) {
		if err := gcfg.ReadFileInto(cfg, path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isINI(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg", ".gcfg":
		return true
	}
	return false
}

// Validate checks the preconditions the integration core relies on but
// does not check itself.
func (c *Config) Validate() error {
	if c.Run.Step <= 0 || math.IsNaN(c.Run.Step) || math.IsInf(c.Run.Step, 0) {
		return fmt.Errorf("step %v: %w", c.Run.Step, continuum.ErrInvalidStep)
	}
	if c.Run.Time < 0 || math.IsNaN(c.Run.Time) || math.IsInf(c.Run.Time, 0) {
		return fmt.Errorf("time %v: %w", c.Run.Time, continuum.ErrInvalidDuration)
	}
	if c.Run.Time/c.Run.Step > MaxSteps {
		return fmt.Errorf("time/step = %.0f exceeds %d steps: %w", c.Run.Time/c.Run.Step, MaxSteps, continuum.ErrInvalidCount)
	}
	if c.Body.Radius <= 0 || math.IsNaN(c.Body.Radius) {
		return fmt.Errorf("radius %v: %w", c.Body.Radius, continuum.ErrInvalidRadius)
	}
	if c.Body.Points < 1 {
		return fmt.Errorf("points %d: %w", c.Body.Points, continuum.ErrInvalidCount)
	}
	if c.Field.Grid < 0 || c.Field.Grid > MaxGrid {
		return fmt.Errorf("grid %d: %w", c.Field.Grid, continuum.ErrInvalidCount)
	}
	return nil
}

// GridSide is the number of cells along one grid axis.
func (c *Config) GridSide() int {
	return 2*c.Field.Grid + 1
}

package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/models"
)

const (
	DefaultModel = "logistic"
	DefaultR     = 0.1
	DefaultK     = 40.0
	DefaultY0    = 1.0
	DefaultStart = 1.0
	DefaultEnd   = 200.0
	DefaultSteps = 50
)

type Config struct {
	Model       string          `yaml:"model"`
	Params      ParamsConfig    `yaml:"params"`
	Y0          float64         `yaml:"y0"`
	Interval    dynamo.Interval `yaml:"interval"`
	Steps       int             `yaml:"steps"`
	CurvePoints int             `yaml:"curve_points"`
	IncludeEnd  bool            `yaml:"include_end"`
	// AlignStart measures the closed form from Interval.Start instead of x = 0.
	AlignStart bool `yaml:"align_start"`
}

type ParamsConfig struct {
	R float64 `yaml:"r"`
	K float64 `yaml:"k"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Params:      ParamsConfig{R: DefaultR, K: DefaultK},
		Y0:          DefaultY0,
		Interval:    dynamo.Interval{Start: DefaultStart, End: DefaultEnd},
		Steps:       DefaultSteps,
		CurvePoints: models.DefaultCurvePoints,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate checks the config before a run. Steps == 0 is accepted and yields
// an empty trajectory.
func (c *Config) Validate() error {
	if !models.NewRegistry().Has(c.Model) {
		return fmt.Errorf("%w: %s", models.ErrUnknownModel, c.Model)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps=%d: %w", c.Steps, dynamo.ErrParameterBounds)
	}
	if c.CurvePoints < 2 {
		return fmt.Errorf("curve_points=%d: %w", c.CurvePoints, dynamo.ErrParameterBounds)
	}
	for name, v := range map[string]float64{
		"y0":             c.Y0,
		"interval.start": c.Interval.Start,
		"interval.end":   c.Interval.End,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%g: %w", name, v, dynamo.ErrParameterBounds)
		}
	}
	return nil
}

func (c *Config) ModelParams() map[string]float64 {
	return map[string]float64{
		"r": c.Params.R,
		"k": c.Params.K,
	}
}

// BuildModel resolves the configured model, anchored at Interval.Start when
// AlignStart is set.
func (c *Config) BuildModel() (models.Model, error) {
	m, err := models.NewRegistry().Get(c.Model, c.ModelParams())
	if err != nil {
		return nil, err
	}
	if c.AlignStart {
		m = models.Anchored(m, c.Interval.Start)
	}
	return m, nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEquation = "cardioid"
	DefaultSamples  = 720
	DefaultFrames   = 200
	DefaultFPS      = 30
	DefaultTheme    = "cyberpunk"
)

// Config describes one trace session: which equation, how finely to
// sample it, and how to animate it. Parameter values are keyed by the
// names the equation declares.
type Config struct {
	Equation string             `yaml:"equation"`
	Samples  int                `yaml:"samples"`
	Frames   int                `yaml:"frames"`
	FPS      int                `yaml:"fps"`
	Loop     bool               `yaml:"loop"`
	Theme    string             `yaml:"theme"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation: DefaultEquation,
		Samples:  DefaultSamples,
		Frames:   DefaultFrames,
		FPS:      DefaultFPS,
		Loop:     true,
		Theme:    DefaultTheme,
		Params:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Check(); err != nil {
		return nil, err
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

// Check rejects values no session can run with. Parameter ranges are
// checked later against the chosen equation's definitions.
func (c *Config) Check() error {
	if c.Equation == "" {
		return fmt.Errorf("config: equation must be set")
	}
	if c.Samples < 2 {
		return fmt.Errorf("config: samples must be at least 2, got %d", c.Samples)
	}
	if c.Frames < 1 {
		return fmt.Errorf("config: frames must be positive, got %d", c.Frames)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("config: fps must be in [1, 120], got %d", c.FPS)
	}
	return nil
}

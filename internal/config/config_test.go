package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Equation != "cardioid" {
		t.Errorf("expected equation cardioid, got %s", cfg.Equation)
	}
	if cfg.Samples < 2 {
		t.Error("samples should be at least 2")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("default config should pass check: %v", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no equation", func(c *Config) { c.Equation = "" }},
		{"one sample", func(c *Config) { c.Samples = 1 }},
		{"zero frames", func(c *Config) { c.Frames = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"fps too high", func(c *Config) { c.FPS = 500 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Check(); err == nil {
			t.Errorf("%s: expected check to fail", tt.name)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rose", "three-petal")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["k"] != 3.0 {
		t.Errorf("expected k 3.0, got %f", cfg.Params["k"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("rose", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "three-petal")
	if cfg != nil {
		t.Error("expected nil for nonexistent equation")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("rose")
	if len(presets) == 0 {
		t.Error("expected presets for rose")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("expected sorted presets, got %v", presets)
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent equation")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	cfg := DefaultConfig()
	cfg.Equation = "rose"
	cfg.Samples = 1440
	cfg.Params = map[string]float64{"a": 3, "k": 5}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Equation != "rose" {
		t.Errorf("expected rose, got %s", loaded.Equation)
	}
	if loaded.Samples != 1440 {
		t.Errorf("expected 1440 samples, got %d", loaded.Samples)
	}
	if loaded.Params["k"] != 5 {
		t.Errorf("expected k 5, got %f", loaded.Params["k"])
	}
}

func TestLoad_Invalid(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresetsPassCheck(t *testing.T) {
	for eq, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Check() != nil {
				t.Errorf("preset %s/%s fails check", eq, name)
			}
		}
	}
}

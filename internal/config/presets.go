package config

import "sort"

var Presets = map[string]map[string]*Config{
	"rose": {
		"three-petal": {
			Equation: "rose", Samples: 720, Frames: 200, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 3.0, "k": 3.0},
		},
		"daisy": {
			Equation: "rose", Samples: 1440, Frames: 360, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 4.0, "k": 8.0},
		},
		"half-step": {
			Equation: "rose", Samples: 1440, Frames: 400, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 3.0, "k": 2.5},
		},
	},
	"cardioid": {
		"classic": {
			Equation: "cardioid", Samples: 720, Frames: 200, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 2.0},
		},
		"wide": {
			Equation: "cardioid", Samples: 720, Frames: 150, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 4.5},
		},
	},
	"spiral": {
		"tight": {
			Equation: "spiral", Samples: 900, Frames: 300, FPS: 30, Loop: false,
			Params: map[string]float64{"a": 0.2},
		},
		"loose": {
			Equation: "spiral", Samples: 720, Frames: 200, FPS: 30, Loop: false,
			Params: map[string]float64{"a": 1.2},
		},
	},
	"limacon": {
		"inner-loop": {
			Equation: "limacon", Samples: 720, Frames: 200, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 1.0, "b": 2.5},
		},
		"dimpled": {
			Equation: "limacon", Samples: 720, Frames: 200, FPS: 30, Loop: true,
			Params: map[string]float64{"a": 3.0, "b": 2.0},
		},
	},
}

func GetPreset(equation, preset string) *Config {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := eqPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(equation string) []string {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(eqPresets))
	for name := range eqPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package polar

import (
	"math"
)

// Sample is one point of a sampled curve: the polar pair and its
// Cartesian projection x = r·cos θ, y = r·sin θ.
type Sample struct {
	Theta float64 `json:"theta"`
	R     float64 `json:"r"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Series is an ordered sequence of samples over a domain. It is always
// recomputed in full; there is no partial-update invariant.
type Series []Sample

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// Radii returns the radius column, in domain order.
func (s Series) Radii() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.R
	}
	return out
}

func (s Series) IsValid() bool {
	for _, p := range s {
		if math.IsNaN(p.R) || math.IsInf(p.R, 0) {
			return false
		}
	}
	return true
}

// Params maps parameter names to their current values.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// ParamDef declares one tunable coefficient of an equation. Min, Max and
// Step bound the UI controls; Default seeds a fresh parameter set.
type ParamDef struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// Defaults builds a parameter set from the declared defaults.
func Defaults(defs []ParamDef) Params {
	p := make(Params, len(defs))
	for _, d := range defs {
		p[d.Name] = d.Default
	}
	return p
}

// Domain is an evenly spaced range of angles.
type Domain struct {
	Start   float64
	End     float64
	Samples int
}

// Step returns the angle increment between consecutive samples.
func (d Domain) Step() float64 {
	if d.Samples < 2 {
		return 0
	}
	return (d.End - d.Start) / float64(d.Samples-1)
}

// Equation is a polar curve r = f(θ) with declared parameters.
type Equation interface {
	// Name is the registry key, e.g. "cardioid".
	Name() string
	// Formula is the display string, e.g. "r = a(1 + cos θ)".
	Formula() string
	ParamDefs() []ParamDef
	Radius(theta float64, p Params) float64
	// DefaultDomain picks the angle range that closes the curve for the
	// given parameters (more than one revolution for some rose curves).
	DefaultDomain(p Params) Domain
}

// DefaultSamples is the sample count used when a domain does not set one.
const DefaultSamples = 720

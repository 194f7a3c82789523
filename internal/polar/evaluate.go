package polar

import (
	"fmt"
	"math"
)

// Evaluate samples eq over the domain with the given parameters and
// converts each sample to Cartesian coordinates. Out-of-range parameter
// values are clamped (with a logged warning) rather than rejected: this
// feeds a UI where range-constrained controls make violations unreachable
// in normal use. Missing parameters take their declared defaults.
func Evaluate(eq Equation, p Params, d Domain) (Series, error) {
	if d.Samples < 2 || d.End <= d.Start {
		return nil, fmt.Errorf("%w: [%g, %g] with %d samples", ErrEmptyDomain, d.Start, d.End, d.Samples)
	}
	p = Clamp(eq.ParamDefs(), p)

	series := make(Series, d.Samples)
	step := d.Step()
	for i := range series {
		theta := d.Start + float64(i)*step
		r := eq.Radius(theta, p)
		series[i] = Sample{
			Theta: theta,
			R:     r,
			X:     r * math.Cos(theta),
			Y:     r * math.Sin(theta),
		}
	}
	return series, nil
}

// Clamp normalizes a parameter set against its definitions: values are
// pinned to [Min, Max], missing entries take defaults, and names with no
// definition are dropped. Every correction is logged at warn level.
func Clamp(defs []ParamDef, p Params) Params {
	out := make(Params, len(defs))
	for _, def := range defs {
		v, ok := p[def.Name]
		if !ok {
			out[def.Name] = def.Default
			continue
		}
		switch {
		case v < def.Min:
			Logger().Warn("clamping parameter to minimum", "param", def.Name, "value", v, "min", def.Min)
			v = def.Min
		case v > def.Max:
			Logger().Warn("clamping parameter to maximum", "param", def.Name, "value", v, "max", def.Max)
			v = def.Max
		}
		out[def.Name] = v
	}
	for name := range p {
		if _, ok := out[name]; !ok {
			Logger().Warn("ignoring unknown parameter", "param", name)
		}
	}
	return out
}

// Validate is the strict counterpart of Clamp, used on the config path
// where a typo should fail loudly instead of being silently corrected.
func Validate(defs []ParamDef, p Params) error {
	known := make(map[string]ParamDef, len(defs))
	for _, def := range defs {
		known[def.Name] = def
	}
	for name, v := range p {
		def, ok := known[name]
		if !ok {
			return fmt.Errorf("unknown parameter: %s", name)
		}
		if v < def.Min || v > def.Max {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrParameterBounds, name, v, def.Min, def.Max)
		}
	}
	return nil
}

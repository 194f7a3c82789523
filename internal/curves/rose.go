package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Rose is the petaled curve r = a·cos(kθ). Integer k gives k petals when
// odd and 2k when even. Non-integer k needs two revolutions to close.
type Rose struct{}

func NewRose() *Rose { return &Rose{} }

func (r *Rose) Name() string    { return "rose" }
func (r *Rose) Formula() string { return "r = a·cos(kθ)" }

func (r *Rose) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 3.0, Step: 0.1},
		{Name: "k", Min: 1.0, Max: 10.0, Default: 3.0, Step: 1.0},
	}
}

func (r *Rose) Radius(theta float64, p polar.Params) float64 {
	return p["a"] * math.Cos(p["k"]*theta)
}

func (r *Rose) DefaultDomain(p polar.Params) polar.Domain {
	end := 2 * math.Pi
	if k, ok := p["k"]; ok && k != math.Trunc(k) {
		end = 4 * math.Pi
	}
	return polar.Domain{Start: 0, End: end, Samples: polar.DefaultSamples}
}

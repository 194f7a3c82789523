package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Cardioid is the heart-shaped curve r = a(1 + cos θ). At θ=0 the radius
// is 2a; at θ=π it pinches to zero.
type Cardioid struct{}

func NewCardioid() *Cardioid { return &Cardioid{} }

func (c *Cardioid) Name() string    { return "cardioid" }
func (c *Cardioid) Formula() string { return "r = a(1 + cos θ)" }

func (c *Cardioid) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 2.0, Step: 0.1},
	}
}

func (c *Cardioid) Radius(theta float64, p polar.Params) float64 {
	return p["a"] * (1 + math.Cos(theta))
}

func (c *Cardioid) DefaultDomain(p polar.Params) polar.Domain {
	return polar.Domain{Start: 0, End: 2 * math.Pi, Samples: polar.DefaultSamples}
}

package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Circle is the constant-radius curve r = a.
type Circle struct{}

func NewCircle() *Circle { return &Circle{} }

func (c *Circle) Name() string    { return "circle" }
func (c *Circle) Formula() string { return "r = a" }

func (c *Circle) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 2.0, Step: 0.1},
	}
}

func (c *Circle) Radius(theta float64, p polar.Params) float64 {
	return p["a"]
}

func (c *Circle) DefaultDomain(p polar.Params) polar.Domain {
	return polar.Domain{Start: 0, End: 2 * math.Pi, Samples: polar.DefaultSamples}
}

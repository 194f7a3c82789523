package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Spiral is the Archimedean spiral r = a·θ.
type Spiral struct{}

func NewSpiral() *Spiral { return &Spiral{} }

func (s *Spiral) Name() string    { return "spiral" }
func (s *Spiral) Formula() string { return "r = a·θ" }

func (s *Spiral) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 2.0, Default: 0.5, Step: 0.1},
	}
}

func (s *Spiral) Radius(theta float64, p polar.Params) float64 {
	return p["a"] * theta
}

func (s *Spiral) DefaultDomain(p polar.Params) polar.Domain {
	return polar.Domain{Start: 0, End: 2 * math.Pi, Samples: polar.DefaultSamples}
}

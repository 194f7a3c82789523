package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Lemniscate is the figure-eight r² = a²·cos 2θ. Where cos 2θ < 0 the
// curve does not exist; the radius is held at zero there so the trace
// passes through the origin between lobes.
type Lemniscate struct{}

func NewLemniscate() *Lemniscate { return &Lemniscate{} }

func (l *Lemniscate) Name() string    { return "lemniscate" }
func (l *Lemniscate) Formula() string { return "r² = a²·cos 2θ" }

func (l *Lemniscate) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 2.0, Step: 0.1},
	}
}

func (l *Lemniscate) Radius(theta float64, p polar.Params) float64 {
	c := math.Cos(2 * theta)
	if c < 0 {
		return 0
	}
	return p["a"] * math.Sqrt(c)
}

func (l *Lemniscate) DefaultDomain(p polar.Params) polar.Domain {
	return polar.Domain{Start: 0, End: 2 * math.Pi, Samples: polar.DefaultSamples}
}

package curves

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// Limacon is r = a + b·cos θ. With b > a it develops an inner loop,
// with b = a it degenerates to the cardioid.
type Limacon struct{}

func NewLimacon() *Limacon { return &Limacon{} }

func (l *Limacon) Name() string    { return "limacon" }
func (l *Limacon) Formula() string { return "r = a + b·cos θ" }

func (l *Limacon) ParamDefs() []polar.ParamDef {
	return []polar.ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 2.0, Step: 0.1},
		{Name: "b", Min: 0.1, Max: 5.0, Default: 1.0, Step: 0.1},
	}
}

func (l *Limacon) Radius(theta float64, p polar.Params) float64 {
	return p["a"] + p["b"]*math.Cos(theta)
}

func (l *Limacon) DefaultDomain(p polar.Params) polar.Domain {
	return polar.Domain{Start: 0, End: 2 * math.Pi, Samples: polar.DefaultSamples}
}

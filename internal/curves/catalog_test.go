package curves_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polarlab/internal/analysis"
	"github.com/san-kum/polarlab/internal/curves"
	"github.com/san-kum/polarlab/internal/polar"
)

func evaluate(eq polar.Equation, p polar.Params) polar.Series {
	s, err := polar.Evaluate(eq, p, eq.DefaultDomain(p))
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Catalog", func() {
	It("registers every curve in menu order", func() {
		reg := curves.Catalog()
		Expect(reg.Names()).To(Equal([]string{
			"circle", "cardioid", "rose", "spiral", "limacon", "lemniscate",
		}))
	})

	It("has a blurb for every curve", func() {
		for _, name := range curves.Catalog().Names() {
			Expect(curves.Blurbs).To(HaveKey(name))
		}
	})

	It("produces finite radii at default parameters", func() {
		reg := curves.Catalog()
		for _, name := range reg.Names() {
			eq, err := reg.Lookup(name)
			Expect(err).NotTo(HaveOccurred())
			s := evaluate(eq, polar.Defaults(eq.ParamDefs()))
			Expect(s.IsValid()).To(BeTrue(), "curve %s", name)
		}
	})
})

var _ = Describe("Circle", func() {
	It("keeps every sample at distance a from the origin", func() {
		s := evaluate(curves.NewCircle(), polar.Params{"a": 2})
		for _, p := range s {
			Expect(p.X*p.X + p.Y*p.Y).To(BeNumerically("~", 4, 1e-9))
		}
	})

	It("closes", func() {
		s := evaluate(curves.NewCircle(), polar.Params{"a": 2})
		Expect(analysis.Closed(s, 1e-6)).To(BeTrue())
	})
})

var _ = Describe("Cardioid", func() {
	It("peaks at 2a on the positive x axis and pinches at π", func() {
		eq := curves.NewCardioid()
		p := polar.Params{"a": 2.0}
		Expect(eq.Radius(0, p)).To(BeNumerically("~", 4, 1e-12))
		Expect(eq.Radius(math.Pi, p)).To(BeNumerically("~", 0, 1e-12))
	})
})

var _ = Describe("Rose", func() {
	It("crosses zero 2k times for integer k over one revolution", func() {
		s := evaluate(curves.NewRose(), polar.Params{"a": 3, "k": 3})
		Expect(analysis.ZeroCrossings(s)).To(Equal(6))
	})

	It("extends the domain to two revolutions for non-integer k", func() {
		eq := curves.NewRose()
		d := eq.DefaultDomain(polar.Params{"a": 3, "k": 2.5})
		Expect(d.End).To(BeNumerically("~", 4*math.Pi, 1e-12))

		d = eq.DefaultDomain(polar.Params{"a": 3, "k": 4})
		Expect(d.End).To(BeNumerically("~", 2*math.Pi, 1e-12))
	})
})

var _ = Describe("Spiral", func() {
	It("grows the radius monotonically", func() {
		s := evaluate(curves.NewSpiral(), polar.Params{"a": 0.5})
		for i := 1; i < len(s); i++ {
			Expect(s[i].R).To(BeNumerically(">", s[i-1].R))
		}
	})

	It("does not close", func() {
		s := evaluate(curves.NewSpiral(), polar.Params{"a": 0.5})
		Expect(analysis.Closed(s, 1e-6)).To(BeFalse())
	})
})

var _ = Describe("Limacon", func() {
	It("degenerates to the cardioid when b equals a", func() {
		lim := curves.NewLimacon()
		card := curves.NewCardioid()
		for _, theta := range []float64{0, 0.7, math.Pi / 2, math.Pi, 5} {
			got := lim.Radius(theta, polar.Params{"a": 2, "b": 2})
			want := card.Radius(theta, polar.Params{"a": 2})
			Expect(got).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("goes negative inside the inner loop when b exceeds a", func() {
		eq := curves.NewLimacon()
		Expect(eq.Radius(math.Pi, polar.Params{"a": 1, "b": 2.5})).To(BeNumerically("<", 0))
	})
})

var _ = Describe("Lemniscate", func() {
	It("holds the radius at zero where the curve does not exist", func() {
		eq := curves.NewLemniscate()
		Expect(eq.Radius(math.Pi/2, polar.Params{"a": 2})).To(BeZero())
		Expect(eq.Radius(0, polar.Params{"a": 2})).To(BeNumerically("~", 2, 1e-12))
	})
})

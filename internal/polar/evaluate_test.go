package polar

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// constEq is a minimal equation for exercising the evaluator: r = a.
type constEq struct{}

func (constEq) Name() string    { return "const" }
func (constEq) Formula() string { return "r = a" }

func (constEq) ParamDefs() []ParamDef {
	return []ParamDef{
		{Name: "a", Min: 0.1, Max: 5.0, Default: 2.0, Step: 0.1},
	}
}

func (constEq) Radius(theta float64, p Params) float64 { return p["a"] }

func (constEq) DefaultDomain(p Params) Domain {
	return Domain{Start: 0, End: 2 * math.Pi, Samples: DefaultSamples}
}

func TestEvaluateLength(t *testing.T) {
	d := Domain{Start: 0, End: 2 * math.Pi, Samples: 100}
	s, err := Evaluate(constEq{}, Params{"a": 2}, d)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 100 {
		t.Errorf("expected 100 samples, got %d", len(s))
	}
	if s[0].Theta != 0 {
		t.Errorf("expected first sample at 0, got %f", s[0].Theta)
	}
	if math.Abs(s[len(s)-1].Theta-2*math.Pi) > 1e-10 {
		t.Errorf("expected last sample at 2π, got %f", s[len(s)-1].Theta)
	}
}

func TestEvaluateCartesian(t *testing.T) {
	a := 2.0
	d := Domain{Start: 0, End: 2 * math.Pi, Samples: 360}
	s, err := Evaluate(constEq{}, Params{"a": a}, d)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range s {
		if math.Abs(p.X*p.X+p.Y*p.Y-a*a) > 1e-9 {
			t.Fatalf("sample at θ=%f off the circle: x=%f y=%f", p.Theta, p.X, p.Y)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	d := Domain{Start: 0, End: 2 * math.Pi, Samples: 180}
	p := Params{"a": 1.5}

	first, err := Evaluate(constEq{}, p, d)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Evaluate(constEq{}, p, d)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-evaluation differs (-first +second):\n%s", diff)
	}
}

func TestEvaluateEmptyDomain(t *testing.T) {
	_, err := Evaluate(constEq{}, Params{"a": 1}, Domain{Start: 0, End: 0, Samples: 100})
	if !errors.Is(err, ErrEmptyDomain) {
		t.Errorf("expected ErrEmptyDomain, got %v", err)
	}

	_, err = Evaluate(constEq{}, Params{"a": 1}, Domain{Start: 0, End: 1, Samples: 1})
	if !errors.Is(err, ErrEmptyDomain) {
		t.Errorf("expected ErrEmptyDomain for 1 sample, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	defs := constEq{}.ParamDefs()

	got := Clamp(defs, Params{"a": 99})
	if got["a"] != 5.0 {
		t.Errorf("expected clamp to max 5.0, got %f", got["a"])
	}

	got = Clamp(defs, Params{"a": -1})
	if got["a"] != 0.1 {
		t.Errorf("expected clamp to min 0.1, got %f", got["a"])
	}

	got = Clamp(defs, Params{})
	if got["a"] != 2.0 {
		t.Errorf("expected default 2.0 for missing param, got %f", got["a"])
	}

	got = Clamp(defs, Params{"a": 1, "bogus": 7})
	if _, ok := got["bogus"]; ok {
		t.Error("expected unknown param to be dropped")
	}
}

func TestValidate(t *testing.T) {
	defs := constEq{}.ParamDefs()

	if err := Validate(defs, Params{"a": 2}); err != nil {
		t.Errorf("expected in-range param to pass, got %v", err)
	}

	err := Validate(defs, Params{"a": 99})
	if !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}

	if err := Validate(defs, Params{"bogus": 1}); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestDomainStep(t *testing.T) {
	d := Domain{Start: 0, End: 1, Samples: 11}
	if math.Abs(d.Step()-0.1) > 1e-12 {
		t.Errorf("expected step 0.1, got %f", d.Step())
	}

	if (Domain{Samples: 1}).Step() != 0 {
		t.Error("expected zero step for degenerate domain")
	}
}

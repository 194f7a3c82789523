package polar

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(constEq{})

	eq, err := r.Lookup("const")
	if err != nil {
		t.Fatal(err)
	}
	if eq.Name() != "const" {
		t.Errorf("expected const, got %s", eq.Name())
	}
}

func TestRegistryLookup_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("missing")
	if !errors.Is(err, ErrUnknownEquation) {
		t.Errorf("expected ErrUnknownEquation, got %v", err)
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(constEq{})
	r.Register(constEq{}) // re-register keeps position

	names := r.Names()
	if len(names) != 1 || names[0] != "const" {
		t.Errorf("unexpected names: %v", names)
	}
}

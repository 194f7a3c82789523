package polar

import "fmt"

// Registry maps equation names to implementations while preserving the
// order they were registered in, which is also the menu order.
type Registry struct {
	names  []string
	byName map[string]Equation
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Equation)}
}

// Register adds an equation. Re-registering a name replaces the previous
// entry without changing its position.
func (r *Registry) Register(eq Equation) {
	name := eq.Name()
	if _, ok := r.byName[name]; !ok {
		r.names = append(r.names, name)
	}
	r.byName[name] = eq
}

func (r *Registry) Lookup(name string) (Equation, error) {
	eq, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownEquation, name, r.names)
	}
	return eq, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

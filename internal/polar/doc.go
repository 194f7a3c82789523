// Package polar provides the core primitives for sampling polar curves.
//
// A curve is defined as radius r = f(θ) together with the parameter
// definitions that shape it:
//
//   - [Equation]: interface for a polar curve (r = f(θ, params))
//   - [ParamDef]: declared range, default and step of one parameter
//   - [Domain]: evenly spaced angle range to sample over
//   - [Series]: sampled (θ, r) pairs with their Cartesian projection
//   - [Registry]: name → equation lookup for the CLI and the TUI menu
//
// # Example
//
//	eq, _ := catalog.Lookup("rose")
//	series, _ := polar.Evaluate(eq, polar.Params{"a": 3, "k": 3}, eq.DefaultDomain(nil))
//
// Evaluate is a pure function: the same equation, parameters and domain
// always produce the same series.
package polar

// Package curves holds the equation catalog: one file per supported
// polar curve, each implementing polar.Equation. Catalog returns them
// registered in menu order.
package curves

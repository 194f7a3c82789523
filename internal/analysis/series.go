// Package analysis provides diagnostics over sampled polar series:
// radius sign changes (petal structure), extents, arc length and closure.
package analysis

import (
	"math"

	"github.com/san-kum/polarlab/internal/polar"
)

// ZeroCrossings counts sign changes in the radius sequence. A rose curve
// r = cos(kθ) with integer k crosses zero 2k times over one revolution.
// Samples that are exactly zero are skipped so a tangent touch is not
// counted twice.
func ZeroCrossings(s polar.Series) int {
	count := 0
	prev := 0.0
	for _, p := range s {
		if p.R == 0 {
			continue
		}
		if prev != 0 && math.Signbit(p.R) != math.Signbit(prev) {
			count++
		}
		prev = p.R
	}
	return count
}

// RadiusBounds returns the smallest and largest signed radius.
func RadiusBounds(s polar.Series) (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0].R, s[0].R
	for _, p := range s[1:] {
		if p.R < min {
			min = p.R
		}
		if p.R > max {
			max = p.R
		}
	}
	return min, max
}

// Extent returns the largest absolute Cartesian coordinate, the radius of
// the square viewport that contains the whole curve.
func Extent(s polar.Series) float64 {
	ext := 0.0
	for _, p := range s {
		if a := math.Abs(p.X); a > ext {
			ext = a
		}
		if a := math.Abs(p.Y); a > ext {
			ext = a
		}
	}
	return ext
}

// ArcLength approximates the curve length by summing segment lengths of
// the sampled polyline.
func ArcLength(s polar.Series) float64 {
	total := 0.0
	for i := 1; i < len(s); i++ {
		dx := s[i].X - s[i-1].X
		dy := s[i].Y - s[i-1].Y
		total += math.Hypot(dx, dy)
	}
	return total
}

// Closed reports whether the trace ends where it began, within tol.
func Closed(s polar.Series, tol float64) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return math.Hypot(last.X-first.X, last.Y-first.Y) <= tol
}

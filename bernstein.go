package bezier

import "math"

// BernsteinLevels approximates the Bézier curve with the given control points
// by evaluating it directly in Bernstein form and returns the polyline of
// every level from 0 to iterations. Level i samples the curve at the 2^i + 1
// parameters returned by [SampleParams], in increasing order.
//
// The binomial coefficients are computed exactly once per call. Level 0
// evaluates t = 0 and t = 1, which yield the first and last control point
// exactly.
//
// An empty control polygon or an iteration count outside of
// [0, MaxIterations] result in an [*InvalidInputError].
func BernsteinLevels(control []Point, iterations int) (Levels, error) {
	if err := validate(control, iterations); err != nil {
		return nil, err
	}

	b := Bez(control)
	coeffs := binomials(b.Degree())
	levels := make(Levels, iterations+1)
	for i := range levels {
		ts := SampleParams(i)
		pts := make([]Point, len(ts))
		for j, t := range ts {
			pts[j] = b.eval(coeffs, t)
		}
		levels[i] = pts
	}
	return levels, nil
}

// SampleParams returns the 2^level + 1 uniformly spaced parameters k/2^level
// for k in [0, 2^level]. Both 0 and 1 are included and all values are exact.
// It returns nil if level is outside of [0, MaxIterations].
func SampleParams(level int) []float64 {
	if level < 0 || level > MaxIterations {
		return nil
	}
	n := 1 << level
	ts := make([]float64, n+1)
	for k := range ts {
		ts[k] = math.Ldexp(float64(k), -level)
	}
	return ts
}

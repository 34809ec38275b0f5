package bezier

import (
	"math"
	"math/big"
	"slices"
)

// Bez is a Bézier curve of arbitrary degree, given by its control points in
// order. A curve with n+1 control points has degree n.
type Bez []Point

func (b Bez) Degree() int  { return len(b) - 1 }
func (b Bez) Start() Point { return b[0] }
func (b Bez) End() Point   { return b[len(b)-1] }

// Eval evaluates the curve at t in the Bernstein form
//
//	B(t) = Σ C(n,k) (1-t)^(n-k) t^k P_k
//
// For evaluating many parameters of the same curve, [BernsteinLevels] avoids
// recomputing the binomial coefficients.
func (b Bez) Eval(t float64) Point {
	return b.eval(binomials(b.Degree()), t)
}

func (b Bez) eval(coeffs []float64, t float64) Point {
	n := b.Degree()
	mt := 1 - t
	var sum Vec2
	for k, p := range b {
		w := coeffs[k] * math.Pow(mt, float64(n-k)) * math.Pow(t, float64(k))
		sum = sum.Add(Vec2(p).Mul(w))
	}
	return Point(sum)
}

// Subdivide splits the curve at t = 0.5 by de Casteljau corner cutting. The
// control polygon is collapsed by pairwise midpoints, one point per round,
// until a single point remains; that point lies on the curve and is returned
// as mid. The first point of every round forms the left half's control
// polygon and the last point of every round the right half's, so that left
// ends and right starts with mid. Both halves have the same degree as b.
func (b Bez) Subdivide() (left, right Bez, mid Point) {
	if len(b) == 0 {
		panic("called with empty curve")
	}
	n := len(b)
	left = make(Bez, n)
	right = make(Bez, n)
	work := slices.Clone(b)
	left[0] = work[0]
	right[n-1] = work[n-1]
	for r := 1; r < n; r++ {
		for i := range n - r {
			work[i] = work[i].Midpoint(work[i+1])
		}
		left[r] = work[0]
		right[n-1-r] = work[n-1-r]
	}
	return left, right, work[0]
}

// BoundingBox returns the bounding box of the control polygon, which
// encloses the curve.
func (b Bez) BoundingBox() Rect {
	return BoundingBoxOf(b)
}

// binomials returns C(n, k) for k in [0, n]. The coefficients are computed
// exactly and rounded to float64 once; for n beyond ~1030 they overflow to
// +Inf.
func binomials(n int) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+1)
	var c big.Int
	for k := range n + 1 {
		c.Binomial(int64(n), int64(k))
		// A fresh Float takes the precision of c, so the only rounding is
		// the final conversion.
		out[k], _ = new(big.Float).SetInt(&c).Float64()
	}
	return out
}

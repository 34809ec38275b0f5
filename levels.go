package bezier

import (
	"fmt"
	"iter"
	"math"
)

// Levels holds the polyline approximations of a curve, one per refinement
// level, starting with level 0.
type Levels [][]Point

// Iterations returns the deepest refinement level.
func (ls Levels) Iterations() int {
	return len(ls) - 1
}

// Polyline returns the approximation at level i.
func (ls Levels) Polyline(i int) Polyline {
	return Polyline(ls[i])
}

// Curve returns the finest approximation, that is the deepest level.
func (ls Levels) Curve() Polyline {
	return ls.Polyline(ls.Iterations())
}

// All yields every level together with its index.
func (ls Levels) All() iter.Seq2[int, Polyline] {
	return func(yield func(int, Polyline) bool) {
		for i, pts := range ls {
			if !yield(i, Polyline(pts)) {
				return
			}
		}
	}
}

// Polyline is an open chain of points joined by straight lines.
type Polyline []Point

// Segments yields the lines between consecutive points.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Arclen returns the total length of the polyline. For successive levels of
// a curve approximation it increases towards the arc length of the curve.
func (p Polyline) Arclen() float64 {
	var l float64
	for seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

func (p Polyline) BoundingBox() Rect {
	return BoundingBoxOf(p)
}

// MaxDeviation returns the largest distance between corresponding points of
// two sets of levels, such as those produced by [SubdivisionLevels] and
// [BernsteinLevels] for the same control points. It returns an error if the
// two sets don't have the same number of levels and points per level.
func MaxDeviation(a, b Levels) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("bezier: level count mismatch: %d != %d", len(a), len(b))
	}
	var worst2 float64
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return 0, fmt.Errorf("bezier: level %d: point count mismatch: %d != %d", i, len(a[i]), len(b[i]))
		}
		for j := range a[i] {
			worst2 = max(worst2, a[i][j].Sub(b[i][j]).Hypot2())
		}
	}
	return math.Sqrt(worst2), nil
}

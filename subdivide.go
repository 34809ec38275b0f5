package bezier

// segment is a pending piece of the curve in [SubdivisionLevels]. left and
// right are the boundary points that the segment contributes to its level
// around its midpoint: only the leftmost segment of a level carries the
// curve's start point, and every segment carries the point that ends it.
type segment struct {
	poly  Bez
	left  []Point
	right []Point
	depth int
}

// SubdivisionLevels approximates the Bézier curve with the given control
// points by repeated midpoint subdivision and returns the polyline of every
// refinement level from 0 to iterations.
//
// Level 0 consists of the first and last control point. Each further level
// splits every segment of the previous level at its parameter midpoint with
// [Bez.Subdivide], so level i holds 2^i + 1 points, all of which lie on the
// curve. The first and last point of every level are the first and last
// control point, exactly.
//
// The curve is processed depth-first, left half before right half, using an
// explicit work stack; the Go call stack does not grow with iterations. The
// amount of work and memory is exponential in iterations and callers should
// bound it.
//
// The halves are subdivided using their exact control polygons, each ending
// or starting with the split point once. Tools that repeat the split point in
// the halves' polygons produce the same levels 0 and 1 but diverge from level
// 2 on, where their points no longer lie on the curve.
//
// A control polygon with a single point yields that point repeated. An empty
// control polygon or an iteration count outside of [0, MaxIterations] result
// in an [*InvalidInputError].
func SubdivisionLevels(control []Point, iterations int) (Levels, error) {
	if err := validate(control, iterations); err != nil {
		return nil, err
	}

	levels := make(Levels, iterations+1)
	first, last := control[0], control[len(control)-1]
	stack := []segment{{
		poly:  Bez(control),
		left:  []Point{first},
		right: []Point{last},
		depth: 0,
	}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seg.depth == 0 {
			// Level 0 is the undivided segment's boundary, recorded before
			// any cutting takes place.
			levels[0] = append(levels[0], seg.left...)
			levels[0] = append(levels[0], seg.right...)
		}
		if iterations == 0 {
			break
		}

		l, r, mid := seg.poly.Subdivide()
		next := seg.depth + 1
		if levels[next] == nil {
			levels[next] = make([]Point, 0, 1<<next+1)
		}
		levels[next] = append(levels[next], seg.left...)
		levels[next] = append(levels[next], mid)
		levels[next] = append(levels[next], seg.right...)

		if seg.depth == iterations-1 {
			continue
		}
		// Push the right half first so that the left half is processed
		// first and each level is filled from start to end.
		stack = append(stack,
			segment{poly: r, left: nil, right: seg.right, depth: next},
			segment{poly: l, left: seg.left, right: []Point{mid}, depth: next},
		)
	}
	return levels, nil
}

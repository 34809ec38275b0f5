// Package bezier computes successive polyline approximations of Bézier curves
// of arbitrary degree.
//
// A curve is given by its control polygon, an ordered slice of [Point]s. For a
// number of iterations N, the package produces N+1 refinement levels, each an
// ordered sequence of points on the curve joined into a [Polyline]. Level 0 is
// the chord between the first and last control point; every following level
// doubles the number of segments.
//
// # Two algorithms
//
// [SubdivisionLevels] works by divide and conquer. The control polygon is
// collapsed by repeated midpoint averaging ([Bez.Subdivide], de Casteljau's
// algorithm at t = 0.5), which yields a point on the curve as well as the
// exact control polygons of the curve's two halves. Both halves are then
// subdivided in turn, down to the requested depth.
//
// [BernsteinLevels] evaluates the curve directly. Level i samples the
// explicit Bernstein form at 2^i + 1 uniformly spaced parameters (see
// [SampleParams]).
//
// The subdivision at depth i produces exactly the curve points at the
// parameters k/2^i, so for any control polygon both algorithms agree up to
// floating-point rounding. [MaxDeviation] measures by how much.
//
// Both functions are pure: they don't retain or modify their arguments, and
// calling them twice with the same input produces bit-for-bit identical
// results.
//
// # Degenerate input
//
// A control polygon with a single point describes a curve that is that point;
// every level consists of copies of it. Two control points describe a
// straight line, which is subdivided into evenly spaced points like any other
// curve. Only an empty control polygon or a number of iterations outside of
// [0, MaxIterations] is an error, reported as [*InvalidInputError].
//
// # Cost
//
// Level i has 2^i + 1 points, so both time and memory grow exponentially with
// the number of iterations. The Bernstein form additionally costs O(n) per
// point for a curve of degree n. Callers are expected to bound the number of
// iterations; values beyond 20 are rarely useful.
//
// # Records
//
// [Record] reads and writes the plain text format used to hand control
// points and an iteration count to other tools.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier

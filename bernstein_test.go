package bezier

import (
	"errors"
	"testing"
)

func TestSampleParams(t *testing.T) {
	diff(t, []float64{0, 1}, SampleParams(0))
	diff(t, []float64{0, 0.5, 1}, SampleParams(1))
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, SampleParams(2))

	for _, level := range []int{-1, MaxIterations + 1, 63} {
		if ts := SampleParams(level); ts != nil {
			t.Errorf("got %d parameters for level %d, want none", len(ts), level)
		}
	}

	ts := SampleParams(10)
	if got, want := len(ts), 1025; got != want {
		t.Fatalf("got %d parameters, want %d", got, want)
	}
	if ts[0] != 0 || ts[len(ts)-1] != 1 {
		t.Errorf("parameters run from %v to %v, want 0 to 1", ts[0], ts[len(ts)-1])
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("parameters not increasing at %d: %v <= %v", i, ts[i], ts[i-1])
		}
	}
}

func TestBernsteinLevelsLine(t *testing.T) {
	levels, err := BernsteinLevels([]Point{Pt(0, 0), Pt(10, 0)}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(levels), 4; got != want {
		t.Fatalf("got %d levels, want %d", got, want)
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0)}, levels[0])
	diff(t, []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, levels[1])
	diff(t, []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0)}, levels[2])
}

func TestBernsteinLevelsQuadratic(t *testing.T) {
	levels, err := BernsteinLevels([]Point{Pt(0, 0), Pt(2, 2), Pt(4, 0)}, 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Levels{
		{Pt(0, 0), Pt(4, 0)},
		{Pt(0, 0), Pt(2, 1), Pt(4, 0)},
		{Pt(0, 0), Pt(1, 0.75), Pt(2, 1), Pt(3, 0.75), Pt(4, 0)},
	}, levels, approx(1e-15))
}

func TestBernsteinLevelsEndpoints(t *testing.T) {
	for name, control := range testPolygons {
		levels, err := BernsteinLevels(control, 6)
		if err != nil {
			t.Fatal(err)
		}
		first, last := control[0], control[len(control)-1]
		for i, pts := range levels {
			if got, want := len(pts), 1<<i+1; got != want {
				t.Errorf("%s: level %d has %d points, want %d", name, i, got, want)
			}
			if pts[0] != first || pts[len(pts)-1] != last {
				t.Errorf("%s: level %d runs from %v to %v, want %v to %v",
					name, i, pts[0], pts[len(pts)-1], first, last)
			}
		}
	}
}

func TestBernsteinLevelsSinglePoint(t *testing.T) {
	p := Pt(-3, 8)
	levels, err := BernsteinLevels([]Point{p}, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, pts := range levels {
		for _, q := range pts {
			if q != p {
				t.Errorf("level %d contains %v, want only %v", i, q, p)
			}
		}
	}
}

func TestBernsteinLevelsDeterministic(t *testing.T) {
	control := testPolygons["degree7"]
	a, err := BernsteinLevels(control, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BernsteinLevels(control, 7)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)
}

func TestBernsteinLevelsInvalid(t *testing.T) {
	var ierr *InvalidInputError
	if _, err := BernsteinLevels([]Point{Pt(0, 0)}, -3); !errors.As(err, &ierr) {
		t.Errorf("got error %v, want *InvalidInputError", err)
	}
	if _, err := BernsteinLevels([]Point{}, 0); !errors.As(err, &ierr) {
		t.Errorf("got error %v, want *InvalidInputError", err)
	}
	if _, err := BernsteinLevels([]Point{Pt(0, 0), Pt(1, 1)}, 63); !errors.As(err, &ierr) {
		t.Errorf("got error %v, want *InvalidInputError", err)
	}
}

func TestEnginesAgree(t *testing.T) {
	for name, control := range testPolygons {
		t.Run(name, func(t *testing.T) {
			sub, err := SubdivisionLevels(control, 8)
			if err != nil {
				t.Fatal(err)
			}
			bern, err := BernsteinLevels(control, 8)
			if err != nil {
				t.Fatal(err)
			}
			d, err := MaxDeviation(sub, bern)
			if err != nil {
				t.Fatal(err)
			}
			const epsilon = 1e-10
			if d > epsilon {
				t.Errorf("engines deviate by %g, want at most %g", d, epsilon)
			}
		})
	}
}

func BenchmarkBernsteinLevels(b *testing.B) {
	control := testPolygons["degree7"]
	for range b.N {
		if _, err := BernsteinLevels(control, 10); err != nil {
			b.Fatal(err)
		}
	}
}

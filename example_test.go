package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleSubdivisionLevels() {
	control := []bezier.Point{bezier.Pt(0, 0), bezier.Pt(2, 2), bezier.Pt(4, 0)}
	levels, err := bezier.SubdivisionLevels(control, 2)
	if err != nil {
		panic(err)
	}
	for i, p := range levels.All() {
		fmt.Println(i, p)
	}
	// Output:
	// 0 [(0, 0) (4, 0)]
	// 1 [(0, 0) (2, 1) (4, 0)]
	// 2 [(0, 0) (1, 0.75) (2, 1) (3, 0.75) (4, 0)]
}

func ExampleBernsteinLevels() {
	control := []bezier.Point{bezier.Pt(0, 0), bezier.Pt(10, 0)}
	levels, err := bezier.BernsteinLevels(control, 2)
	if err != nil {
		panic(err)
	}
	for i, p := range levels.All() {
		fmt.Println(i, p)
	}
	// Output:
	// 0 [(0, 0) (10, 0)]
	// 1 [(0, 0) (5, 0) (10, 0)]
	// 2 [(0, 0) (2.5, 0) (5, 0) (7.5, 0) (10, 0)]
}

func ExampleMaxDeviation() {
	control := []bezier.Point{bezier.Pt(10, 5), bezier.Pt(15, 15), bezier.Pt(20, 0), bezier.Pt(25, 10)}
	sub, _ := bezier.SubdivisionLevels(control, 6)
	bern, _ := bezier.BernsteinLevels(control, 6)
	d, err := bezier.MaxDeviation(sub, bern)
	if err != nil {
		panic(err)
	}
	fmt.Println(d < 1e-9)
	// Output:
	// true
}

package bezier

import "fmt"

// MaxIterations is the largest number of iterations the engine accepts. Level
// i holds 2^i + 1 points, so even this limit far exceeds the memory of
// ordinary machines; it exists so that the point counts cannot overflow.
const MaxIterations = 40

// InvalidInputError is returned when the engine is called with arguments it
// cannot compute levels for: an iteration count outside of [0, MaxIterations]
// or an empty control polygon. Control polygons with one or two points are not errors.
type InvalidInputError struct {
	// Field names the offending argument.
	Field string
	// Value is the offending value. For the control polygon it is its length.
	Value  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("bezier: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func validate(control []Point, iterations int) error {
	if iterations < 0 {
		return &InvalidInputError{
			Field:  "iterations",
			Value:  iterations,
			Reason: "must not be negative",
		}
	}
	if iterations > MaxIterations {
		return &InvalidInputError{
			Field:  "iterations",
			Value:  iterations,
			Reason: fmt.Sprintf("must not exceed %d", MaxIterations),
		}
	}
	if len(control) == 0 {
		return &InvalidInputError{
			Field:  "control polygon length",
			Value:  0,
			Reason: "need at least one control point",
		}
	}
	return nil
}

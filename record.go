package bezier

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is the plain-text hand-off between whatever collects control points
// and the tools that render them. The first line holds the iteration count,
// every following line one control point as "x y":
//
//	3
//	0 0
//	2 2
//	4 0
type Record struct {
	Iterations int
	Control    []Point
}

// RecordError describes a malformed line of a [Record].
type RecordError struct {
	// Line is the 1-based line number.
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("bezier: record line %d: %s", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ReadRecord parses a record from r. Blank lines after the iteration count are
// skipped. Infinite and NaN coordinates are rejected. A negative iteration count is reported as an [*InvalidInputError];
// the number of control points is not checked.
func ReadRecord(r io.Reader) (Record, error) {
	var rec Record
	sc := bufio.NewScanner(r)
	line := 0
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, &RecordError{Line: 1, Err: io.ErrUnexpectedEOF}
	}
	line++
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return Record{}, &RecordError{Line: line, Err: err}
	}
	if n < 0 {
		return Record{}, &InvalidInputError{
			Field:  "iterations",
			Value:  n,
			Reason: "must not be negative",
		}
	}
	rec.Iterations = n

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Record{}, &RecordError{
				Line: line,
				Err:  fmt.Errorf("want 2 coordinates, got %d", len(fields)),
			}
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Record{}, &RecordError{Line: line, Err: err}
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Record{}, &RecordError{Line: line, Err: err}
		}
		pt := Pt(x, y)
		if pt.IsInf() || pt.IsNaN() {
			return Record{}, &RecordError{
				Line: line,
				Err:  fmt.Errorf("coordinates must be finite, got %v", pt),
			}
		}
		rec.Control = append(rec.Control, pt)
	}
	if err := sc.Err(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// WriteTo writes the record to w in the format read by [ReadRecord].
// Coordinates are written with the shortest representation that reads back
// to the same value.
func (rec Record) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(strconv.Itoa(rec.Iterations))
	buf.WriteByte('\n')
	for _, p := range rec.Control {
		buf.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

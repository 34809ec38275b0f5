// Command bezier approximates a Bézier curve read from a control point record
// and prints the polyline of every refinement level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"honnef.co/go/bezier"
)

const helpBanner = `
bezier — successive approximations of Bézier curves.
    Version: %s

Reads a record (iteration count on the first line, one "x y" control point
per following line) and prints every refinement level.

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// minControlPoints is the smallest control polygon that describes a curve
// worth approximating.
const minControlPoints = 3

// Version indicates the current build version.
var Version = "devel"

// engine is one of the approximation methods the command can run.
type engine struct {
	name    string
	compute func([]bezier.Point, int) (bezier.Levels, error)
}

var engines = map[string]engine{
	"dnc":       {"divide and conquer", bezier.SubdivisionLevels},
	"bernstein": {"bernstein", bezier.BernsteinLevels},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bezier", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		source     = flags.String("in", pipeName, "Control point record, - for stdin")
		method     = flags.String("method", "both", "Approximation method: dnc, bernstein or both")
		iterations = flags.Int("n", -1, "Number of iterations, overriding the record's (-1 keeps it)")
		dest       = flags.String("out", "", "Write the record, with the iteration count used, to this file")
		quiet      = flags.Bool("quiet", false, "Only print a summary of each level")
		warnAbove  = flags.Int("warn", 5, "Warn when computing more than this many iterations")
	)
	flags.Usage = func() {
		fmt.Fprintf(stderr, helpBanner, Version)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	deco := newDecorator(stdout)
	logDeco := newDecorator(stderr)
	logger := log.New(stderr, "", 0)
	fail := func(format string, args ...any) int {
		logger.Print(logDeco.textf(errorMessage, format, args...))
		return 1
	}

	var selected []engine
	switch *method {
	case "both":
		selected = []engine{engines["dnc"], engines["bernstein"]}
	case "dnc", "bernstein":
		selected = []engine{engines[*method]}
	default:
		return fail("unknown method %q, want dnc, bernstein or both", *method)
	}

	rec, err := loadRecord(*source, stdin)
	if err != nil {
		return fail("Failed to load the control points: %v", err)
	}
	if *iterations >= 0 {
		rec.Iterations = *iterations
	}
	if len(rec.Control) < minControlPoints {
		return fail("Please provide at least %d control points, got %d", minControlPoints, len(rec.Control))
	}
	if rec.Iterations > bezier.MaxIterations {
		return fail("Cannot compute %d iterations, the limit is %d", rec.Iterations, bezier.MaxIterations)
	}
	if rec.Iterations > *warnAbove {
		logger.Print(logDeco.textf(warningMessage,
			"Computing %d iterations, the finest level has %d points; this may take a while.",
			rec.Iterations, 1<<rec.Iterations+1))
	}

	if *dest != "" {
		if err := saveRecord(*dest, rec); err != nil {
			return fail("Unable to write the record: %v", err)
		}
	}

	results := make([]bezier.Levels, 0, len(selected))
	for _, e := range selected {
		start := time.Now()
		levels, err := e.compute(rec.Control, rec.Iterations)
		elapsed := time.Since(start)
		if err != nil {
			return fail("%s: %v", e.name, err)
		}
		results = append(results, levels)

		fmt.Fprintln(stdout, deco.textf(statusMessage, "Bézier curve (%s)", e.name))
		printLevels(stdout, levels, *quiet)
		fmt.Fprintf(stdout, "Time taken: %s\n\n", deco.text(formatTime(elapsed), successMessage))
	}

	if len(results) == 2 {
		d, err := bezier.MaxDeviation(results[0], results[1])
		if err != nil {
			return fail("Comparing methods: %v", err)
		}
		fmt.Fprintf(stdout, "Max deviation between methods: %s\n", deco.textf(successMessage, "%g", d))
	}
	return 0
}

func loadRecord(source string, stdin io.Reader) (bezier.Record, error) {
	if source == pipeName {
		return bezier.ReadRecord(stdin)
	}
	f, err := os.Open(source)
	if err != nil {
		return bezier.Record{}, err
	}
	defer f.Close()
	return bezier.ReadRecord(f)
}

func saveRecord(path string, rec bezier.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := rec.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printLevels(w io.Writer, levels bezier.Levels, quiet bool) {
	for i, p := range levels.All() {
		if quiet {
			fmt.Fprintf(w, "level %d: %d points, length %g\n", i, len(p), p.Arclen())
			continue
		}
		pts := make([]string, len(p))
		for j, pt := range p {
			pts[j] = pt.String()
		}
		fmt.Fprintf(w, "level %d (%d points, length %g): %s\n", i, len(p), p.Arclen(), strings.Join(pts, " "))
	}
}

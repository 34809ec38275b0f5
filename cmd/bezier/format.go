package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// messageType selects the color a message is printed in.
type messageType int

const (
	defaultMessage messageType = iota
	successMessage
	errorMessage
	statusMessage
	warningMessage
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	successColor = "\x1b[32m"
	errorColor   = "\x1b[31m"
	warningColor = "\x1b[33m"
)

// decorator colors messages, or leaves them alone when the output isn't a
// terminal.
type decorator struct {
	color bool
}

func newDecorator(w io.Writer) decorator {
	f, ok := w.(*os.File)
	return decorator{color: ok && term.IsTerminal(int(f.Fd()))}
}

func (d decorator) text(s string, msgType messageType) string {
	if !d.color {
		return s
	}
	switch msgType {
	case defaultMessage:
		s = defaultColor + s
	case statusMessage:
		s = statusColor + s
	case successMessage:
		s = successColor + s
	case errorMessage:
		s = errorColor + s
	case warningMessage:
		s = warningColor + s
	default:
		return s
	}
	return s + defaultColor
}

func (d decorator) textf(msgType messageType, format string, args ...any) string {
	return d.text(fmt.Sprintf(format, args...), msgType)
}

// formatTime formats a duration for humans. Computations usually finish well
// within a second, so short durations keep their unit.
func formatTime(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Microsecond).String()
	}
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	remainingSeconds := math.Mod(d.Seconds(), 60)
	if d.Minutes() < 60.0 {
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
}

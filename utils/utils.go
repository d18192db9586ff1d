package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// Terminal color codes used by the command line output.
const (
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[31m"
	DefaultColor = "\x1b[39m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps msg in the given color when colors are enabled.
func Colorize(enabled bool, color, msg string) string {
	if !enabled {
		return msg
	}
	return color + msg + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 1.0 {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(remainingSeconds))
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh:%dm:%ds",
		int64(d.Hours()), int64(remainingMinutes), int64(remainingSeconds))
}

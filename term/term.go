// Package term answers two questions collaborators keep asking: is
// this stream a terminal, and how much color does it take? It also
// renders styled text that degrades to plain text wherever color is
// unsupported or explicitly disabled.
//
// Detection honours the conventional environment contract:
//
//   - NO_COLOR, when set, disables color entirely.
//   - FORCE_COLOR, when set, enables color even off-terminal (useful
//     under CI log collectors).
//   - TERM=dumb disables color.
//
// Otherwise the stream must be a terminal, and the level comes from
// the terminfo-based probe.
package term

import (
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// ColorLevel is how much color an output stream supports.
type ColorLevel uint8

const (
	// ColorNone: no escape sequences at all.
	ColorNone ColorLevel = iota
	// Color16: the basic 16 ANSI colors.
	Color16
	// Color256: the 256-color palette.
	Color256
	// ColorTrue: 24-bit RGB.
	ColorTrue
)

// String implements [fmt.Stringer].
func (l ColorLevel) String() string {
	switch l {
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	case ColorTrue:
		return "truecolor"
	default:
		return "none"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SupportLevel returns the color level of standard output.
func SupportLevel() ColorLevel {
	return SupportLevelOf(os.Stdout)
}

// SupportLevelOf returns the color level appropriate for writing to f,
// applying the environment contract described in the package
// documentation.
func SupportLevelOf(f *os.File) ColorLevel {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return ColorNone
	}
	if os.Getenv("TERM") == "dumb" {
		return ColorNone
	}
	forced := false
	if _, set := os.LookupEnv("FORCE_COLOR"); set {
		forced = true
	}
	if !forced && !IsTerminal(f) {
		return ColorNone
	}
	switch {
	case color.IsSupportTrueColor():
		return ColorTrue
	case color.IsSupport256Color():
		return Color256
	case color.IsSupportColor() || forced:
		return Color16
	default:
		return ColorNone
	}
}

// Colorize renders s with the given colors and options when standard
// output supports color, and returns s untouched otherwise.
func Colorize(s string, colors ...color.Color) string {
	if len(colors) == 0 || SupportLevel() == ColorNone {
		return s
	}
	return color.New(colors...).Sprint(s)
}

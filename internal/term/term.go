// Package term holds the color palette shared by log lines and the
// category and lexicon listings.
//
// The palette lives in package variables that [Configure] fills once at
// startup. With color off every variable is "", so callers concatenate
// them unconditionally. Names printed to stdout stay plain; only stderr
// output is colored, so auto mode inspects stderr.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/assetnamer/internal/config"
)

// Active escape sequences. Empty while color is off.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	Bold    = ""
	NC      = "" // reset
)

type palette struct {
	red, green, yellow, blue, cyan, magenta, bold, reset string
}

var ansi = palette{
	red:     "\033[1;91m",
	green:   "\033[1;92m",
	yellow:  "\033[1;93m",
	blue:    "\033[1;94m",
	cyan:    "\033[1;96m",
	magenta: "\033[1;95m",
	bold:    "\033[1m",
	reset:   "\033[0m",
}

// Configure installs the ANSI palette or the empty one depending on mode.
// [logging.NewLogger] calls it before the first line is written.
func Configure(mode config.ColorMode) {
	p := palette{}
	if wantColor(mode, os.Stderr) {
		p = ansi
	}
	Red, Green, Yellow, Blue = p.red, p.green, p.yellow, p.blue
	Cyan, Magenta, Bold, NC = p.cyan, p.magenta, p.bold, p.reset
}

// Enabled reports whether the ANSI palette is installed.
func Enabled() bool { return NC != "" }

// Paint wraps s in color when colors are enabled.
func Paint(color, s string) string {
	if color == "" || !Enabled() {
		return s
	}
	return color + s + NC
}

// wantColor decides auto mode from out: a TTY with NO_COLOR
// (https://no-color.org) unset and TERM other than "dumb".
func wantColor(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

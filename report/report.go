// Package report renders keyword sets and discovered keywords for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/rcfile"
)

// ANSI escape codes used by the renderers.
const (
	Reset        = "\x1b[0m"
	Bright       = "\x1b[1m"
	Red          = "\x1b[31m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	BrightGreen  = "\x1b[1;32m"
	BrightYellow = "\x1b[1;33m"
	BrightCyan   = "\x1b[1;36m"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 100

// Paint wraps s in code and Reset when color is on.
func Paint(color bool, code, s string) string {
	if !color || code == "" {
		return s
	}
	return code + s + Reset
}

// ModeColor returns the color keywords of mode are listed in.
func ModeColor(mode rcfile.Mode) string {
	if mode == rcfile.ModeLibrary {
		return BrightYellow
	}
	return BrightCyan
}

// TableOptions controls Table layout.
type TableOptions struct {
	Width  int // terminal columns, DefaultWidth when <= 0
	Indent int // leading spaces on every row
	Color  bool
}

// Table prints names in columns, filled top to bottom then left to right.
// Names for which changed returns true are shown in bright green.
func Table(w io.Writer, names []string, changed func(string) bool, mode rcfile.Mode, opts TableOptions) {
	if len(names) == 0 {
		fmt.Fprintln(w, "Table is empty")
		return
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	cell := 0
	for _, name := range names {
		if len(name) > cell {
			cell = len(name)
		}
	}

	cols := (width - opts.Indent) / (cell + 1)
	if cols < 1 {
		cols = 1
	}
	rows := (len(names) + cols - 1) / cols

	indent := strings.Repeat(" ", opts.Indent)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		sb.WriteString(indent)
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(names) {
				break
			}
			if c > 0 {
				sb.WriteByte(' ')
			}
			name := names[i]
			code := ModeColor(mode)
			if changed != nil && changed(name) {
				code = BrightGreen
			}
			sb.WriteString(Paint(opts.Color, code, name))
			if next := (c+1)*rows + r; c+1 < cols && next < len(names) {
				sb.WriteString(strings.Repeat(" ", cell-len(name)))
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

// Fact prints a discovered keyword with its location and context window,
// the context indented by four spaces.
func Fact(w io.Writer, f keywords.Fact, color bool) {
	fmt.Fprintf(w, "Keyword specifier found in line %s of file %s\n",
		Paint(color, Magenta, fmt.Sprint(f.Line)), Paint(color, Yellow, f.File))
	fmt.Fprintf(w, "  Keyword identified as %s (%s)\n", Paint(color, BrightCyan, f.Name), f.Specifier)
	if f.Context == "" {
		return
	}
	fmt.Fprintln(w)
	for _, line := range strings.Split(f.Context, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
	fmt.Fprintln(w)
}

// Summary prints the one-line outcome of a run over n sources.
func Summary(w io.Writer, n int, what string, set *keywords.Set, mode rcfile.Mode, color bool) {
	pref := "User"
	if mode == rcfile.ModeLibrary {
		pref = "Library"
	}
	count := Paint(color, Bright+Magenta, fmt.Sprint(n))
	label := Paint(color, Bright, pref+" Keyword")
	if set.ChangedCount() == 0 {
		fmt.Fprintf(w, "After processing %s %s, no new keywords were found - the %s set is unchanged.\n", count, what, label)
		return
	}
	fmt.Fprintf(w, "After processing %s %s, the %s set is now\n", count, what, label)
}

// Package keywords finds declaration names in a lexeme stream and renders the
// source around each one for review.
package keywords

import "fmt"

// Fact is one discovered declaration name with its provenance.
type Fact struct {
	Name      string
	Specifier string // the word that introduced the declaration
	File      string
	Line      int
	Column    int
	Context   string
}

func (f Fact) String() string {
	return fmt.Sprintf("%s:%d: %s %s", f.File, f.Line, f.Specifier, f.Name)
}

// Highlight is the pair of markers wrapped around the site in a context
// window.
type Highlight struct {
	Start string
	End   string
}

var (
	// ANSIHighlight renders the site in bold cyan.
	ANSIHighlight = Highlight{Start: "\x1b[1;36m", End: "\x1b[0m"}

	// PlainHighlight is for output that is not a terminal.
	PlainHighlight = Highlight{Start: ">>", End: "<<"}
)

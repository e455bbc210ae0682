package keywords

import (
	"strings"

	"github.com/nanorc-tools/nrc/lexer"
)

// DefaultDepth is how many lexemes a window reaches past the matched span
// before it is widened to whole lines.
const DefaultDepth = 5

// WindowBuilder renders line-aligned source windows around a lexeme span.
type WindowBuilder struct {
	depth     int
	highlight Highlight
}

// NewWindowBuilder creates a WindowBuilder. Negative depths are treated as 0.
func NewWindowBuilder(depth int, hl Highlight) *WindowBuilder {
	if depth < 0 {
		depth = 0
	}
	return &WindowBuilder{depth: depth, highlight: hl}
}

// Bounds returns the inclusive lexeme range of the window around
// [start, end]: depth lexemes either side, then widened until a lexeme
// holding a newline (or the buffer edge) is reached.
func (b *WindowBuilder) Bounds(lexemes []lexer.Lexeme, start, end int) (int, int) {
	last := len(lexemes) - 1
	start = clamp(start, 0, last)
	end = clamp(end, start, last)

	s := start - b.depth
	if s < 0 {
		s = 0
	}
	for s > 0 && !lexemes[s].HasNewline() {
		s--
	}

	e := end + b.depth
	if e > last {
		e = last
	}
	for e < last && !lexemes[e].HasNewline() {
		e++
	}
	return s, e
}

// Build renders the window around [start, end]. The lexeme at anchor is
// wrapped in the highlight markers; a negative anchor selects the first
// lexeme in the window marked as a site. Boundary lexemes are cut at their
// newline so the window holds whole lines only.
func (b *WindowBuilder) Build(lexemes []lexer.Lexeme, start, end, anchor int) string {
	if len(lexemes) == 0 {
		return ""
	}
	s, e := b.Bounds(lexemes, start, end)

	if anchor < 0 {
		for i := s; i <= e; i++ {
			if lexemes[i].Site {
				anchor = i
				break
			}
		}
	}

	var sb strings.Builder
	for i := s; i <= e; i++ {
		lx := lexemes[i]
		text := lx.Text
		if i == s && lx.HasNewline() {
			text = text[strings.LastIndexByte(text, '\n')+1:]
		}
		if i == e && strings.Contains(text, "\n") {
			text = text[:strings.IndexByte(text, '\n')]
		}
		if lx.Kind != lexer.Whitespace && strings.Contains(text, "\n") {
			text = reindent(text, lineIndent(sb.String()))
		}

		if i == anchor {
			sb.WriteString(b.highlight.Start)
			sb.WriteString(text)
			sb.WriteString(b.highlight.End)
			continue
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// lineIndent returns the leading blanks of the last line in s.
func lineIndent(s string) string {
	line := s[strings.LastIndexByte(s, '\n')+1:]
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return line[:n]
}

// reindent aligns the continuation lines of a multi-line lexeme with indent.
// Lines that start with * keep one space so comment stars stay in a column.
func reindent(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = " " + trimmed
		}
		lines[i] = indent + trimmed
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

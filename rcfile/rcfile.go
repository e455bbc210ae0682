// Package rcfile reads and rewrites the keyword section of a nanorc file.
//
// A section starts at a header comment and holds color rules whose regular
// expressions alternate the keywords in groups of ten:
//
//	## custom keywords
//		color brightcyan "[^A-Za-z0-9\_](Foo|Bar)[^A-Za-z0-9\_]*"
//		color brightcyan "^(Foo|Bar)[^A-Za-z0-9\_]"
//		color brightcyan "[^A-Za-z0-9\_](Foo|Bar)$"
//		color brightcyan "^(Foo|Bar)$"
//
// The four anchorings let a keyword match anywhere on a line.
package rcfile

import (
	"fmt"
	"strings"
)

// Mode selects which keyword section is read or written.
type Mode int

const (
	ModeUser Mode = iota
	ModeLibrary
)

var modeNames = map[Mode]string{
	ModeUser:    "user",
	ModeLibrary: "lib",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode accepts "user" or "lib" (also "library").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return ModeUser, nil
	case "lib", "library":
		return ModeLibrary, nil
	default:
		return ModeUser, fmt.Errorf("unknown keyword mode %q (want user or lib)", s)
	}
}

// GroupSize is the number of keywords per color rule.
const GroupSize = 10

const identClass = `[^A-Za-z0-9\_]`

// anchors are the prefix/suffix pairs wrapped around each keyword group.
var anchors = []struct{ prefix, suffix string }{
	{identClass, identClass + "*"},
	{"^", identClass},
	{identClass, "$"},
	{"^", "$"},
}

// Section identifies one keyword block by mode and color.
type Section struct {
	Mode  Mode
	Color string
}

// NewSection returns the section for mode. An empty or "default" color picks
// brightcyan for user keywords and brightyellow for library keywords.
func NewSection(mode Mode, color string) Section {
	if color == "" || color == "default" {
		color = DefaultColor(mode)
	}
	return Section{Mode: mode, Color: color}
}

// DefaultColor returns the color used for mode when none is configured.
func DefaultColor(mode Mode) string {
	if mode == ModeLibrary {
		return "brightyellow"
	}
	return "brightcyan"
}

// Header returns the comment line that opens the section.
func (s Section) Header() string {
	if s.Mode == ModeLibrary {
		return "## library keywords"
	}
	return "## custom keywords"
}

func (s Section) ruleHead() string {
	return "color " + s.Color
}

func (s Section) isHeader(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), s.Header())
}

// ownsRule reports whether line is a color rule of this section.
func (s Section) ownsRule(line string) bool {
	prefix, ok := rulePrefix(line)
	return ok && prefix == s.ruleHead()
}

// GroupLines renders keywords as color rules, GroupSize keywords per line,
// once for every anchoring.
func (s Section) GroupLines(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	var lines []string
	for _, a := range anchors {
		for start := 0; start < len(keywords); start += GroupSize {
			end := start + GroupSize
			if end > len(keywords) {
				end = len(keywords)
			}
			lines = append(lines, fmt.Sprintf("\t%s \"%s(%s)%s\"",
				s.ruleHead(), a.prefix, strings.Join(keywords[start:end], "|"), a.suffix))
		}
	}
	return lines
}

// rulePrefix returns the text before the first quote of line with runs of
// blanks collapsed, e.g. "color brightcyan".
func rulePrefix(line string) (string, bool) {
	idx := strings.IndexByte(line, '"')
	if idx < 0 {
		return "", false
	}
	return strings.Join(strings.Fields(line[:idx]), " "), true
}

// ruleKeywords returns the alternation inside the outermost parentheses.
func ruleKeywords(line string) []string {
	start := strings.IndexByte(line, '(')
	end := strings.LastIndexByte(line, ')')
	if start < 0 || end <= start {
		return nil
	}
	var out []string
	for _, kw := range strings.Split(line[start+1:end], "|") {
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

package keywords

import (
	"github.com/nanorc-tools/nrc/lexer"
)

// typedefSpecifier names its declaration at the end of the statement rather
// than right after the keyword.
const typedefSpecifier = "typedef"

// DefaultSpecifiers returns the specifiers recognised when none are
// configured.
func DefaultSpecifiers() []string {
	return []string{"typedef", "class", "namespace"}
}

// Config configures an Extractor.
type Config struct {
	// Specifiers are the words that introduce a named declaration.
	Specifiers []string

	// Depth is the context window reach in lexemes on either side of a site.
	Depth int

	// Highlight wraps the declared name inside the rendered context.
	Highlight Highlight
}

// DefaultConfig returns the default specifiers, depth and ANSI highlight.
func DefaultConfig() Config {
	return Config{
		Specifiers: DefaultSpecifiers(),
		Depth:      DefaultDepth,
		Highlight:  ANSIHighlight,
	}
}

// Extractor finds declaration sites in a lexeme sequence.
type Extractor struct {
	specifiers map[string]bool
	window     *WindowBuilder
}

// NewExtractor creates an Extractor. An empty specifier list selects
// DefaultSpecifiers.
func NewExtractor(cfg Config) *Extractor {
	specs := cfg.Specifiers
	if len(specs) == 0 {
		specs = DefaultSpecifiers()
	}
	set := make(map[string]bool, len(specs))
	for _, s := range specs {
		set[s] = true
	}
	return &Extractor{
		specifiers: set,
		window:     NewWindowBuilder(cfg.Depth, cfg.Highlight),
	}
}

// IsSpecifier reports whether word introduces a declaration.
func (x *Extractor) IsSpecifier(word string) bool {
	return x.specifiers[word]
}

// Extract scans lexemes left to right and returns one Fact per declaration
// site, in source order, plus the issues it recovered from. The lexeme that
// names each site is marked with Site and given its rendered Context.
// Novelty is not checked here; the same name may be reported many times.
func (x *Extractor) Extract(lexemes []lexer.Lexeme) ([]Fact, []error) {
	var facts []Fact
	var issues []error

	for i := 0; i < len(lexemes); i++ {
		spec := lexemes[i]
		if spec.Kind != lexer.Identifier || !x.specifiers[spec.Text] {
			continue
		}

		if spec.Text == typedefSpecifier {
			name, stop, err := x.typedefName(lexemes, i)
			if err != nil {
				issues = append(issues, err)
				i = stop
				continue
			}
			facts = append(facts, x.site(lexemes, i, name))
			continue
		}

		name := nextSignificant(lexemes, i+1)
		if name < 0 {
			issues = append(issues, &DanglingSpecifierError{
				newIssue(spec, "%s is the last lexeme, no name follows", spec.Text),
			})
			break
		}
		candidate := lexemes[name]
		if candidate.Kind != lexer.Identifier {
			issues = append(issues, &AnonymousDeclarationError{
				Issue: newIssue(spec, "%s is followed by %q, not a name", spec.Text, candidate.Text),
				Got:   candidate.Text,
			})
			continue
		}
		if x.specifiers[candidate.Text] {
			// "enum class Color": the inner specifier owns the name.
			continue
		}
		facts = append(facts, x.site(lexemes, i, name))
		i = name
	}
	return facts, issues
}

// typedefName finds the alias declared by the typedef at index at: the last
// significant lexeme before the first ; at the typedef's brace depth,
// skipping trailing array extents. On failure it returns the index at which
// it gave up.
func (x *Extractor) typedefName(lexemes []lexer.Lexeme, at int) (int, int, error) {
	spec := lexemes[at]
	depth := 0
	for j := at + 1; j < len(lexemes); j++ {
		lx := lexemes[j]
		if lx.Kind != lexer.Operator {
			continue
		}
		switch lx.Text {
		case "{":
			depth++
		case "}":
			if depth == 0 {
				return -1, j, &UnterminatedTypedefError{
					newIssue(spec, "typedef not terminated before the enclosing block closes"),
				}
			}
			depth--
		case ";":
			if depth > 0 {
				continue
			}
			name := skipArrayExtents(lexemes, prevSignificant(lexemes, j-1, at), at)
			if name <= at || lexemes[name].Kind != lexer.Identifier {
				got := ""
				if name > at {
					got = lexemes[name].Text
				}
				return -1, j, &AnonymousDeclarationError{
					Issue: newIssue(spec, "typedef ends with %q, not a name", got),
					Got:   got,
				}
			}
			return name, j, nil
		}
	}
	return -1, len(lexemes) - 1, &UnterminatedTypedefError{
		newIssue(spec, "no ; after typedef before end of input"),
	}
}

func (x *Extractor) site(lexemes []lexer.Lexeme, spec, name int) Fact {
	ctx := x.window.Build(lexemes, spec, name, name)
	lexemes[name].Site = true
	lexemes[name].Context = ctx

	lx := lexemes[name]
	return Fact{
		Name:      lx.Text,
		Specifier: lexemes[spec].Text,
		File:      lx.File,
		Line:      lx.Pos.Line,
		Column:    lx.Pos.Column,
		Context:   ctx,
	}
}

// nextSignificant returns the index of the first lexeme at or after from
// that is not whitespace or a comment, or -1.
func nextSignificant(lexemes []lexer.Lexeme, from int) int {
	for i := from; i < len(lexemes); i++ {
		if lexemes[i].Significant() {
			return i
		}
	}
	return -1
}

// prevSignificant walks back from from, stopping above floor.
func prevSignificant(lexemes []lexer.Lexeme, from, floor int) int {
	for i := from; i > floor; i-- {
		if lexemes[i].Significant() {
			return i
		}
	}
	return floor
}

// skipArrayExtents steps back over trailing [N] groups so that
// `typedef int grid[3][3];` yields grid.
func skipArrayExtents(lexemes []lexer.Lexeme, i, floor int) int {
	for i > floor && lexemes[i].Kind == lexer.Operator && lexemes[i].Text == "]" {
		open := i
		for open > floor && !(lexemes[open].Kind == lexer.Operator && lexemes[open].Text == "[") {
			open--
		}
		if open <= floor {
			return i
		}
		i = prevSignificant(lexemes, open-1, floor)
	}
	return i
}

package keywords

import (
	"fmt"

	"github.com/nanorc-tools/nrc/lexer"
)

// Issue is the base type for problems the extractor recovers from. Issues are
// returned alongside facts and never stop extraction.
type Issue struct {
	Message   string
	File      string
	Pos       lexer.Position
	Specifier string
}

func (e *Issue) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Pos.Line, e.Message)
	}
	return e.Message
}

// UnterminatedTypedefError means no ; closed a typedef before the sequence
// or the enclosing block ended.
type UnterminatedTypedefError struct{ Issue }

// DanglingSpecifierError means a specifier was the last significant lexeme.
type DanglingSpecifierError struct{ Issue }

// AnonymousDeclarationError means the lexeme in name position is not an
// identifier, as in `struct { ... }`.
type AnonymousDeclarationError struct {
	Issue
	Got string
}

func newIssue(spec lexer.Lexeme, format string, args ...any) Issue {
	return Issue{
		Message:   fmt.Sprintf(format, args...),
		File:      spec.File,
		Pos:       spec.Pos,
		Specifier: spec.Text,
	}
}

package lexer

import "strings"

// Kind classifies a lexeme.
type Kind int

const (
	EOF Kind = iota
	Operator         // single or double character punctuation, and ;
	CharacterLiteral // '...' with escapes kept
	StringLiteral    // "..." with escapes kept
	Number           // [0-9][0-9.]*
	Whitespace       // run of space class bytes, newlines included
	Identifier       // [A-Za-z_~][A-Za-z0-9_~]*
	Comment          // /* ... */
	Preprocessor     // #[A-Za-z]*
)

var kindNames = map[Kind]string{
	EOF:              "EOF",
	Operator:         "operator",
	CharacterLiteral: "character",
	StringLiteral:    "string",
	Number:           "number",
	Whitespace:       "whitespace",
	Identifier:       "identifier",
	Comment:          "comment",
	Preprocessor:     "preprocessor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Position is a location in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // byte offset
}

// Lexeme is one classified token. Text is the exact source slice.
type Lexeme struct {
	Text string
	Kind Kind
	File string
	Pos  Position

	// Site marks the lexeme that names a discovered declaration. Context is
	// the rendered window around it and is only set when Site is true.
	Site    bool
	Context string
}

// Line returns the line the lexeme starts on.
func (l Lexeme) Line() int { return l.Pos.Line }

// HasNewline reports whether the lexeme spans a line break.
func (l Lexeme) HasNewline() bool { return strings.Contains(l.Text, "\n") }

// Significant reports whether the lexeme carries code, i.e. it is neither
// whitespace nor a comment.
func (l Lexeme) Significant() bool {
	return l.Kind != Whitespace && l.Kind != Comment && l.Kind != EOF
}

// twoCharOperators is checked before oneCharOperators.
var twoCharOperators = map[string]bool{
	">>": true, "<<": true, "::": true, "==": true, "<=": true,
	">=": true, "!=": true, "->": true, "&&": true, "||": true,
}

var oneCharOperators = map[byte]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	',': true, '.': true, '!': true, '-': true, '+': true, '/': true,
	'*': true, '<': true, '>': true, '=': true, '&': true, ':': true,
	'?': true, '%': true, '|': true, '^': true,
}

// Join concatenates lexeme texts in order.
func Join(lexemes []Lexeme) string {
	var sb strings.Builder
	for _, l := range lexemes {
		sb.WriteString(l.Text)
	}
	return sb.String()
}

package lexer

import (
	"fmt"
	"io"
)

// snippetRadius is how many raw bytes either side of a bad offset are
// reported with a fatal error.
const snippetRadius = 10

// Options tunes the lexer.
type Options struct {
	// MaxCharLiteral rejects character literals longer than this many bytes,
	// quotes included. Zero disables the check.
	MaxCharLiteral int
}

// Lexer turns C-family source into a stream of lexemes.
type Lexer struct {
	file   string
	cur    *Cursor
	opts   Options
	peeked *Lexeme
	err    error
}

// NewLexer creates a Lexer over src. file is recorded on every lexeme.
func NewLexer(file string, src []byte, opts Options) *Lexer {
	return &Lexer{file: file, cur: NewCursor(src), opts: opts}
}

// Tokenize reads r to the end and returns every lexeme in order. On a fatal
// error it returns no lexemes.
func Tokenize(file string, r io.Reader, opts Options) ([]Lexeme, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return TokenizeBytes(file, src, opts)
}

// TokenizeBytes is Tokenize over an in-memory buffer.
func TokenizeBytes(file string, src []byte, opts Options) ([]Lexeme, error) {
	l := NewLexer(file, src, opts)
	var lexemes []Lexeme
	for {
		lx, err := l.Next()
		if err != nil {
			return nil, err
		}
		if lx.Kind == EOF {
			return lexemes, nil
		}
		lexemes = append(lexemes, lx)
	}
}

// Peek returns the next lexeme without consuming it.
func (l *Lexer) Peek() (Lexeme, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	lx, err := l.scan()
	if err != nil {
		return Lexeme{}, err
	}
	l.peeked = &lx
	return lx, nil
}

// Next returns the next lexeme and advances. At end of input it returns a
// lexeme of Kind EOF. Once a fatal error is returned, every later call
// returns the same error.
func (l *Lexer) Next() (Lexeme, error) {
	if l.peeked != nil {
		lx := *l.peeked
		l.peeked = nil
		return lx, nil
	}
	return l.scan()
}

func (l *Lexer) scan() (Lexeme, error) {
	if l.err != nil {
		return Lexeme{}, l.err
	}
	lx, err := l.scanLexeme()
	if err != nil {
		l.err = err
		return Lexeme{}, err
	}
	return lx, nil
}

func (l *Lexer) scanLexeme() (Lexeme, error) {
	for {
		pos := l.cur.Pos()
		if l.cur.AtEnd() {
			return Lexeme{Kind: EOF, File: l.file, Pos: pos}, nil
		}

		ch := l.cur.PeekByte()
		two := l.cur.Peek(2)

		switch {
		case ch == '\'':
			return l.scanQuoted(pos, '\'', CharacterLiteral)
		case ch == '"':
			return l.scanQuoted(pos, '"', StringLiteral)
		case two == "/*":
			return l.scanBlockComment(pos)
		case two == "//":
			l.consumeWhile(func(b byte) bool { return b != '\n' })
			continue
		case isIdentStart(ch):
			l.consumeWhile(isIdentPart)
			return l.emit(pos, Identifier), nil
		case ch == '#':
			l.cur.Next()
			l.consumeWhile(isLetter)
			return l.emit(pos, Preprocessor), nil
		case isDigit(ch):
			l.consumeWhile(func(b byte) bool { return isDigit(b) || b == '.' })
			return l.emit(pos, Number), nil
		case len(two) == 2 && twoCharOperators[two]:
			l.cur.Next()
			l.cur.Next()
			return l.emit(pos, Operator), nil
		case oneCharOperators[ch]:
			l.cur.Next()
			return l.emit(pos, Operator), nil
		case isSpace(ch):
			l.consumeWhile(isSpace)
			return l.emit(pos, Whitespace), nil
		case ch == '\\':
			// Line continuation: the backslash and the whitespace after it
			// produce no lexeme.
			l.cur.Next()
			l.consumeWhile(isSpace)
			continue
		case ch == ';':
			l.cur.Next()
			return l.emit(pos, Operator), nil
		}

		return Lexeme{}, l.unmatched(pos, ch, fmt.Sprintf("unexpected character %q", ch))
	}
}

func (l *Lexer) emit(pos Position, kind Kind) Lexeme {
	return Lexeme{
		Text: l.cur.slice(pos.Offset),
		Kind: kind,
		File: l.file,
		Pos:  pos,
	}
}

// consumeWhile consumes bytes matching pred, pushing back the first one that
// does not match.
func (l *Lexer) consumeWhile(pred func(byte) bool) {
	for {
		c := l.cur.Next()
		if c == EndOfInput {
			return
		}
		if !pred(byte(c)) {
			_ = l.cur.Pushback(c)
			return
		}
	}
}

// scanQuoted consumes a quoted literal. A backslash and the byte after it
// are taken together so an escaped quote never closes the literal.
func (l *Lexer) scanQuoted(pos Position, quote byte, kind Kind) (Lexeme, error) {
	l.cur.Next() // opening quote
	for {
		c := l.cur.Next()
		if c == EndOfInput {
			return Lexeme{}, l.unmatched(pos, quote, fmt.Sprintf("unterminated %s literal", kind))
		}
		if c == '\\' {
			if l.cur.Next() == EndOfInput {
				return Lexeme{}, l.unmatched(pos, quote, fmt.Sprintf("unterminated escape in %s literal", kind))
			}
			continue
		}
		if c == rune(quote) {
			break
		}
	}

	lx := l.emit(pos, kind)
	if kind == CharacterLiteral && l.opts.MaxCharLiteral > 0 && len(lx.Text) > l.opts.MaxCharLiteral {
		return Lexeme{}, &OversizedLiteralError{
			ScanError: ScanError{
				Message: fmt.Sprintf("character literal %s longer than %d bytes", lx.Text, l.opts.MaxCharLiteral),
				File:    l.file,
				Pos:     pos,
				Snippet: l.cur.Snippet(l.cur.Position(), snippetRadius),
			},
			Literal: lx.Text,
			Limit:   l.opts.MaxCharLiteral,
		}
	}
	return lx, nil
}

// scanBlockComment consumes up to and including the first */. Comments do
// not nest.
func (l *Lexer) scanBlockComment(pos Position) (Lexeme, error) {
	l.cur.Next() // /
	l.cur.Next() // *
	for {
		if l.cur.Peek(2) == "*/" {
			l.cur.Next()
			l.cur.Next()
			return l.emit(pos, Comment), nil
		}
		if l.cur.Next() == EndOfInput {
			return Lexeme{}, l.unmatched(pos, '/', "unterminated block comment")
		}
	}
}

func (l *Lexer) unmatched(pos Position, ch byte, msg string) error {
	return &UnmatchedCharacterError{
		ScanError: ScanError{
			Message: msg,
			File:    l.file,
			Pos:     pos,
			Snippet: l.cur.Snippet(pos.Offset, snippetRadius),
		},
		Char: ch,
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '~'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

package lexer

import (
	"errors"
	"fmt"
)

// ErrPushback is returned by Cursor.Pushback when the byte cannot be put back.
var ErrPushback = errors.New("invalid pushback")

// ScanError is the base type of fatal lexer errors. Snippet holds the raw bytes
// around the offending offset.
type ScanError struct {
	Message string
	File    string
	Pos     Position
	Snippet string
	Cause   error
}

func (e *ScanError) Error() string {
	loc := ""
	if e.File != "" {
		loc = e.File + ":"
	}
	if e.Pos.Line > 0 {
		loc += fmt.Sprintf("%d:%d: ", e.Pos.Line, e.Pos.Column)
	} else if loc != "" {
		loc += " "
	}
	if e.Snippet != "" {
		return fmt.Sprintf("%s%s in context %q", loc, e.Message, e.Snippet)
	}
	return loc + e.Message
}

func (e *ScanError) Unwrap() error { return e.Cause }

// UnmatchedCharacterError means no rule matched at a position, or a literal,
// comment or escape ran into the end of input.
type UnmatchedCharacterError struct {
	ScanError
	Char byte
}

// OversizedLiteralError means a character literal exceeded Options.MaxCharLiteral.
type OversizedLiteralError struct {
	ScanError
	Literal string
	Limit   int
}

// Package lexer implements a lossless tokenizer for C-family source files.
//
// The lexer does not parse. It splits a file into classified lexemes
// (operators, literals, numbers, whitespace, identifiers, block comments and
// preprocessor words) so that declaration names can be picked out of the
// stream and shown to an operator in their original layout. Whitespace and
// block comments are kept as lexemes; only // line comments and backslash
// line continuations are dropped.
//
// The package has two layers:
//
//   - Cursor: a byte cursor with line/column tracking, bounded lookahead and
//     single-byte push-back.
//   - Lexer: applies the matching rules in a fixed order at each position and
//     emits the first lexeme that matches.
//
// Usage:
//
//	lexemes, err := lexer.Tokenize("widget.h", f, lexer.Options{})
//	if err != nil {
//	    var bad *lexer.UnmatchedCharacterError
//	    if errors.As(err, &bad) {
//	        fmt.Println(bad.Snippet)
//	    }
//	    return err
//	}
//
// A fatal error stops the file; Tokenize never returns a partial sequence.
package lexer

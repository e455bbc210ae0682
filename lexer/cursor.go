package lexer

// EndOfInput is returned by Cursor.Next once the input is exhausted.
const EndOfInput rune = -1

// Cursor walks a byte buffer one byte at a time, keeping line and column in
// step with every Next and Pushback.
type Cursor struct {
	src []byte
	pos int

	line     int
	prevLine int
	col      int
	prevCol  int

	// backed is set by Pushback and cleared by Next; a second Pushback in a
	// row is rejected.
	backed bool
}

// NewCursor creates a Cursor positioned before the first byte of src.
func NewCursor(src []byte) *Cursor {
	return &Cursor{src: src, line: 1, col: 1}
}

// AtEnd reports whether every byte has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Next consumes and returns one byte, or EndOfInput when none remain.
func (c *Cursor) Next() rune {
	if c.AtEnd() {
		return EndOfInput
	}
	ch := c.src[c.pos]
	c.pos++
	c.backed = false
	c.prevLine = c.line
	if ch == '\n' {
		c.line++
		c.prevCol = c.col
		c.col = 1
	} else {
		c.col++
	}
	return rune(ch)
}

// Peek returns up to n upcoming bytes without consuming them.
func (c *Cursor) Peek(n int) string {
	if n <= 0 || c.AtEnd() {
		return ""
	}
	end := c.pos + n
	if end > len(c.src) {
		end = len(c.src)
	}
	return string(c.src[c.pos:end])
}

// PeekByte returns the next byte, or 0 at end of input.
func (c *Cursor) PeekByte() byte {
	if c.AtEnd() {
		return 0
	}
	return c.src[c.pos]
}

// Pushback un-consumes ch, which must be the byte most recently returned by
// Next. Only one byte can be pushed back between two calls to Next.
// Pushing back EndOfInput is a no-op.
func (c *Cursor) Pushback(ch rune) error {
	if ch == EndOfInput {
		return nil
	}
	if c.pos == 0 || c.backed || rune(c.src[c.pos-1]) != ch {
		return ErrPushback
	}
	c.pos--
	c.backed = true
	if ch == '\n' {
		c.line--
		c.col = c.prevCol
	} else {
		c.col--
	}
	c.prevLine = c.line
	return nil
}

// Position returns the byte offset of the next byte to be consumed.
func (c *Cursor) Position() int { return c.pos }

// Line returns the 1-based line of the next byte.
func (c *Cursor) Line() int { return c.line }

// PrevLine returns the line of the byte most recently consumed by Next. It
// differs from Line only after Next consumes a newline. Pushback resets it
// to Line. It is 0 before the first Next.
func (c *Cursor) PrevLine() int { return c.prevLine }

// Column returns the 1-based column of the next byte.
func (c *Cursor) Column() int { return c.col }

// Pos returns the full position of the next byte.
func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.col, Offset: c.pos}
}

// Len returns the size of the underlying input in bytes.
func (c *Cursor) Len() int { return len(c.src) }

// Snippet returns the raw input in [offset-radius, offset+radius), clamped
// to the buffer.
func (c *Cursor) Snippet(offset, radius int) string {
	start := offset - radius
	if start < 0 {
		start = 0
	}
	end := offset + radius
	if end > len(c.src) {
		end = len(c.src)
	}
	if start >= end {
		return ""
	}
	return string(c.src[start:end])
}

// slice returns src[start:c.pos].
func (c *Cursor) slice(start int) string {
	return string(c.src[start:c.pos])
}

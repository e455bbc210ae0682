package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorNextAdvancesPosition(t *testing.T) {
	c := NewCursor([]byte("ab\nc"))

	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 1, c.Line())

	for i, want := range "ab\nc" {
		got := c.Next()
		assert.Equal(t, want, got, "byte %d", i)
		assert.Equal(t, i+1, c.Position(), "byte %d", i)
	}
	assert.Equal(t, 2, c.Line())
	assert.Equal(t, 2, c.Column())
	assert.True(t, c.AtEnd())
}

func TestCursorEndOfInput(t *testing.T) {
	c := NewCursor([]byte("x"))
	assert.Equal(t, 'x', c.Next())
	assert.Equal(t, EndOfInput, c.Next())
	assert.Equal(t, EndOfInput, c.Next())
	assert.Equal(t, 1, c.Position(), "reading past the end must not move the cursor")

	empty := NewCursor(nil)
	assert.Equal(t, EndOfInput, empty.Next())
	assert.Equal(t, 0, empty.Position())
}

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := NewCursor([]byte("a\nbc"))

	assert.Equal(t, "a\nb", c.Peek(3))
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 1, c.Line())

	c.Next()
	assert.Equal(t, "\nbc", c.Peek(10), "peek past the end returns what is left")
	assert.Equal(t, 1, c.Line())
	assert.Equal(t, "", c.Peek(0))

	for !c.AtEnd() {
		c.Next()
	}
	assert.Equal(t, "", c.Peek(2))
}

func TestCursorPushbackRestoresState(t *testing.T) {
	c := NewCursor([]byte("ab"))
	c.Next()
	before := c.Pos()

	ch := c.Next()
	require.NoError(t, c.Pushback(ch))
	assert.Equal(t, before, c.Pos())
	assert.Equal(t, 'b', c.Next())
}

func TestCursorPushbackNewline(t *testing.T) {
	c := NewCursor([]byte("ab\nc"))
	c.Next()
	c.Next()
	before := c.Pos()

	nl := c.Next()
	require.Equal(t, '\n', nl)
	assert.Equal(t, 2, c.Line())
	assert.Equal(t, 1, c.Column())

	require.NoError(t, c.Pushback(nl))
	assert.Equal(t, before, c.Pos())
	assert.Equal(t, 1, c.Line())
	assert.Equal(t, 3, c.Column())
}

func TestCursorPrevLine(t *testing.T) {
	c := NewCursor([]byte("a\n\nb"))
	assert.Equal(t, 0, c.PrevLine())

	steps := []struct {
		pushback bool
		line     int
		prev     int
	}{
		{false, 1, 1}, // a
		{false, 2, 1}, // first newline
		{false, 3, 2}, // second newline
		{true, 2, 2},  // second newline pushed back
		{false, 3, 2}, // second newline again
		{false, 3, 3}, // b
		{false, 3, 3}, // end of input
	}
	var last rune
	for i, step := range steps {
		if step.pushback {
			require.NoError(t, c.Pushback(last))
		} else {
			last = c.Next()
		}
		assert.Equal(t, step.line, c.Line(), "step %d", i)
		assert.Equal(t, step.prev, c.PrevLine(), "step %d", i)
	}
}

func TestCursorPushbackRejected(t *testing.T) {
	t.Run("nothing consumed", func(t *testing.T) {
		c := NewCursor([]byte("a"))
		assert.ErrorIs(t, c.Pushback('a'), ErrPushback)
		assert.Equal(t, 0, c.Position())
	})

	t.Run("wrong byte", func(t *testing.T) {
		c := NewCursor([]byte("ab"))
		c.Next()
		assert.ErrorIs(t, c.Pushback('z'), ErrPushback)
		assert.Equal(t, 1, c.Position())
	})

	t.Run("twice in a row", func(t *testing.T) {
		c := NewCursor([]byte("ab"))
		c.Next()
		ch := c.Next()
		require.NoError(t, c.Pushback(ch))
		assert.ErrorIs(t, c.Pushback('a'), ErrPushback)
		assert.Equal(t, 1, c.Position())
	})

	t.Run("end of input is a no-op", func(t *testing.T) {
		c := NewCursor([]byte("a"))
		c.Next()
		ch := c.Next()
		require.Equal(t, EndOfInput, ch)
		require.NoError(t, c.Pushback(ch))
		assert.Equal(t, 1, c.Position())
	})
}

// TestCursorPositionMonotonic drives a mix of Next, Peek and Pushback and
// checks that position and line stay in step with what was consumed.
func TestCursorPositionMonotonic(t *testing.T) {
	src := []byte("int x;\n\nclass A {\n};\n")
	c := NewCursor(src)

	wantLine := 1
	for step := 0; !c.AtEnd(); step++ {
		pos := c.Position()
		_ = c.Peek(3)
		require.Equal(t, pos, c.Position())

		ch := c.Next()
		require.Equal(t, pos+1, c.Position())
		if ch == '\n' {
			wantLine++
		}
		require.Equal(t, wantLine, c.Line())

		if step%3 == 0 {
			require.NoError(t, c.Pushback(ch))
			require.Equal(t, pos, c.Position())
			if ch == '\n' {
				wantLine--
			}
			require.Equal(t, wantLine, c.Line())
			require.Equal(t, ch, c.Next())
			if ch == '\n' {
				wantLine++
			}
		}
	}
	assert.Equal(t, len(src), c.Position())
	assert.Equal(t, 5, c.Line())
}

func TestCursorSnippet(t *testing.T) {
	c := NewCursor([]byte("0123456789abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "abcdefghijklmnopqrst", c.Snippet(20, 10))
	assert.Equal(t, "0123", c.Snippet(1, 3))
	assert.Equal(t, "wxyz", c.Snippet(34, 2))
	assert.Equal(t, "", NewCursor(nil).Snippet(0, 10))
}

package scan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user presses Ctrl-C at a prompt.
var ErrAborted = errors.New("prompt aborted")

// LinerInterviewer asks questions through a line editor. It is meant for
// interactive terminals; use CLIInterviewer when stdin is a pipe.
type LinerInterviewer struct {
	Out   io.Writer
	state *liner.State
}

// NewLinerInterviewer puts the terminal into line editing mode. Call Close
// to restore it.
func NewLinerInterviewer(out io.Writer) *LinerInterviewer {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &LinerInterviewer{Out: out, state: ln}
}

// Close restores the terminal.
func (l *LinerInterviewer) Close() error {
	return l.state.Close()
}

// Ask prints the question and reads the reply from the line editor.
func (l *LinerInterviewer) Ask(q *Question) (*Answer, error) {
	if q == nil {
		return nil, fmt.Errorf("nil question")
	}

	prompt := q.Text
	if q.Stage != "" {
		prompt = "[" + q.Stage + "] " + prompt
	}
	prompt += hint(q) + ": "

	line, err := l.state.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return nil, ErrAborted
	case errors.Is(err, io.EOF):
		return &Answer{Skipped: true}, nil
	case err != nil:
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if line = strings.TrimSpace(line); line != "" {
		l.state.AppendHistory(line)
	}

	return parseAnswer(q, line), nil
}

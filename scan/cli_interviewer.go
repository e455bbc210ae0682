package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CLIInterviewer implements the Interviewer interface for terminal use.
// It presents questions on Out and reads answers line by line from In.
type CLIInterviewer struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewCLIInterviewer creates a CLIInterviewer that reads from in and writes to out.
func NewCLIInterviewer(in io.Reader, out io.Writer) *CLIInterviewer {
	return &CLIInterviewer{In: in, Out: out}
}

// Ask presents a question to the terminal and returns the user's answer.
// End of input yields a skipped answer.
func (i *CLIInterviewer) Ask(q *Question) (*Answer, error) {
	if q == nil {
		return nil, fmt.Errorf("nil question")
	}

	if q.Stage != "" {
		fmt.Fprintf(i.Out, "[%s] ", q.Stage)
	}
	fmt.Fprintf(i.Out, "%s%s: ", q.Text, hint(q))

	line, err := i.readLine()
	if errors.Is(err, io.EOF) {
		return &Answer{Skipped: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return parseAnswer(q, line), nil
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned before io.EOF.
func (i *CLIInterviewer) readLine() (string, error) {
	if i.reader == nil {
		i.reader = bufio.NewReader(i.In)
	}
	line, err := i.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// hint renders the accepted replies after the question text, with the
// default in upper case.
func hint(q *Question) string {
	if q.Type == QuestionMultipleChoice {
		keys := make([]string, 0, len(q.Options))
		labels := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			key := opt.Key
			if q.Default != nil && q.Default.Value == opt.Key {
				key = strings.ToUpper(key)
			}
			keys = append(keys, key)
			labels = append(labels, opt.Key+"="+opt.Label)
		}
		return " (" + strings.Join(labels, ", ") + ") [" + strings.Join(keys, "/") + "]"
	}
	if q.Default == nil {
		return " [y/n]"
	}
	if q.Default.Value == AnswerYes {
		return " [Y/n]"
	}
	return " [y/N]"
}

func parseAnswer(q *Question, line string) *Answer {
	if q.Type == QuestionMultipleChoice {
		return parseChoice(q, line)
	}
	return parseYesNo(q, line)
}

// parseYesNo maps a typed line to an answer. Anything starting with y is
// yes; an empty line picks the default.
func parseYesNo(q *Question, line string) *Answer {
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" && q.Default != nil {
		return q.Default
	}
	if strings.HasPrefix(line, "y") {
		return &Answer{Value: AnswerYes}
	}
	return &Answer{Value: AnswerNo}
}

// parseChoice matches line against the option keys and labels. Empty or
// unknown input picks the default, or skips when there is none.
func parseChoice(q *Question, line string) *Answer {
	line = strings.TrimSpace(line)
	for idx := range q.Options {
		opt := &q.Options[idx]
		if strings.EqualFold(line, opt.Key) || strings.EqualFold(line, opt.Label) {
			return &Answer{Value: opt.Key, SelectedOption: opt}
		}
	}
	if q.Default != nil {
		return q.Default
	}
	return &Answer{Skipped: true}
}

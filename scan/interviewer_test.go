package scan

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// askFunc adapts a function to the Interviewer interface.
type askFunc func(*Question) (*Answer, error)

func (f askFunc) Ask(q *Question) (*Answer, error) { return f(q) }

func TestAutoApproveInterviewer(t *testing.T) {
	interviewer := &AutoApproveInterviewer{}

	answer, err := interviewer.Ask(&Question{Type: QuestionYesNo})
	require.NoError(t, err)
	assert.True(t, answer.Yes())

	answer, err = interviewer.Ask(&Question{Type: QuestionMultipleChoice, Options: KeywordChoices()})
	require.NoError(t, err)
	assert.Equal(t, ChoiceAdd, answer.Value)
	require.NotNil(t, answer.SelectedOption)
	assert.Equal(t, "add", answer.SelectedOption.Label)

	answer, err = interviewer.Ask(&Question{Type: QuestionMultipleChoice})
	require.NoError(t, err)
	assert.True(t, answer.Skipped)
}

func TestConfirm(t *testing.T) {
	ok, err := Confirm(&scripted{lines: []string{"yes"}}, "Commit?", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Confirm(&scripted{lines: []string{""}}, "Commit?", "")
	require.NoError(t, err)
	assert.False(t, ok, "an empty reply takes the no default")

	ok, err = Confirm(&scripted{}, "Commit?", "")
	require.NoError(t, err)
	assert.False(t, ok, "skipped answers are a no")

	boom := errors.New("boom")
	_, err = Confirm(askFunc(func(*Question) (*Answer, error) { return nil, boom }), "Commit?", "")
	assert.ErrorIs(t, err, boom)

	_, err = Confirm(nil, "Commit?", "")
	assert.Error(t, err)
}

func TestRecordingInterviewer_DoesNotRecordErrors(t *testing.T) {
	calls := 0
	rec := NewRecordingInterviewer(askFunc(func(q *Question) (*Answer, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("fail")
		}
		return &Answer{Value: q.Text}, nil
	}))

	_, err := rec.Ask(&Question{Text: "one"})
	require.NoError(t, err)
	_, err = rec.Ask(&Question{Text: "two"})
	require.Error(t, err)

	recs := rec.Recordings()
	require.Len(t, recs, 1)
	assert.Equal(t, "one", recs[0].Answer.Value)
}

func TestCLIInterviewer_YesNo(t *testing.T) {
	tests := []struct {
		input   string
		def     *Answer
		want    string
		skipped bool
	}{
		{"y\n", nil, AnswerYes, false},
		{"Yes\n", nil, AnswerYes, false},
		{"n\n", nil, AnswerNo, false},
		{"whatever\n", nil, AnswerNo, false},
		{"\n", &Answer{Value: AnswerYes}, AnswerYes, false},
		{"\n", &Answer{Value: AnswerNo}, AnswerNo, false},
		{"y", nil, AnswerYes, false},
		{"", nil, "", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		interviewer := NewCLIInterviewer(strings.NewReader(tt.input), &out)
		answer, err := interviewer.Ask(&Question{Text: "Proceed?", Type: QuestionYesNo, Default: tt.def})
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.want, answer.Value, "input: %q", tt.input)
		assert.Equal(t, tt.skipped, answer.Skipped, "input: %q", tt.input)
	}
}

func TestCLIInterviewer_PromptHints(t *testing.T) {
	var out bytes.Buffer
	interviewer := NewCLIInterviewer(strings.NewReader("\n\n\n\n"), &out)

	_, _ = interviewer.Ask(&Question{Text: "A?", Type: QuestionYesNo, Stage: "foo.h:3"})
	_, _ = interviewer.Ask(&Question{Text: "B?", Type: QuestionYesNo, Default: &Answer{Value: AnswerYes}})
	_, _ = interviewer.Ask(&Question{Text: "C?", Type: QuestionYesNo, Default: &Answer{Value: AnswerNo}})
	_, _ = interviewer.Ask(&Question{
		Text:    "D?",
		Type:    QuestionMultipleChoice,
		Options: KeywordChoices(),
		Default: &Answer{Value: ChoiceSkip},
	})

	assert.Equal(t, "[foo.h:3] A? [y/n]: B? [Y/n]: C? [y/N]: "+
		"D? (y=add, n=skip, a=add all, q=skip all) [y/N/a/q]: ", out.String())
}

func TestCLIInterviewer_SharesReaderAcrossQuestions(t *testing.T) {
	var out bytes.Buffer
	interviewer := NewCLIInterviewer(strings.NewReader("y\nn\ny\n"), &out)

	var got []bool
	for i := 0; i < 3; i++ {
		ok, err := Confirm(interviewer, "Add?", "")
		require.NoError(t, err)
		got = append(got, ok)
	}
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestCLIInterviewer_MultipleChoice(t *testing.T) {
	tests := []struct {
		input   string
		def     *Answer
		want    string
		label   string
		skipped bool
	}{
		{"a\n", nil, ChoiceAddAll, "add all", false},
		{"Q\n", nil, ChoiceSkipAll, "skip all", false},
		{"Skip\n", nil, ChoiceSkip, "skip", false},
		{"\n", &Answer{Value: ChoiceSkip}, ChoiceSkip, "", false},
		{"what\n", &Answer{Value: ChoiceSkip}, ChoiceSkip, "", false},
		{"what\n", nil, "", "", true},
		{"", nil, "", "", true},
	}
	for _, tt := range tests {
		interviewer := NewCLIInterviewer(strings.NewReader(tt.input), &bytes.Buffer{})
		answer, err := interviewer.Ask(&Question{
			Text:    "Add Foo?",
			Type:    QuestionMultipleChoice,
			Options: KeywordChoices(),
			Default: tt.def,
		})
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.want, answer.Value, "input: %q", tt.input)
		assert.Equal(t, tt.skipped, answer.Skipped, "input: %q", tt.input)
		if tt.label != "" {
			require.NotNil(t, answer.SelectedOption, "input: %q", tt.input)
			assert.Equal(t, tt.label, answer.SelectedOption.Label, "input: %q", tt.input)
		}
	}
}

func TestCLIInterviewer_NilQuestion(t *testing.T) {
	_, err := NewCLIInterviewer(strings.NewReader(""), &bytes.Buffer{}).Ask(nil)
	assert.Error(t, err)
}

package scan

import (
	"fmt"
	"sync"
)

// Interviewer asks a human to confirm what the scan found.
type Interviewer interface {
	// Ask presents a question and blocks until an answer is received.
	Ask(question *Question) (*Answer, error)
}

// Question represents a question to present to a human.
type Question struct {
	Text    string
	Type    QuestionType
	Options []Option
	Stage   string

	// Default is returned when the human enters nothing.
	Default *Answer
}

// QuestionType represents the type of question.
type QuestionType string

const (
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// Option represents a choice in a multiple choice question.
type Option struct {
	Key   string
	Label string
}

// Answer values for yes/no questions.
const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
)

// Answer represents a human's response to a question.
type Answer struct {
	Value          string
	SelectedOption *Option
	Skipped        bool
}

// Yes reports whether the answer approves a yes/no question.
func (a *Answer) Yes() bool {
	return a != nil && !a.Skipped && a.Value == AnswerYes
}

// Confirm asks a yes/no question defaulting to no and reports whether it was
// approved. Skipped answers count as no.
func Confirm(i Interviewer, text, stage string) (bool, error) {
	if i == nil {
		return false, fmt.Errorf("no interviewer configured")
	}
	answer, err := i.Ask(&Question{
		Text:    text,
		Type:    QuestionYesNo,
		Stage:   stage,
		Default: &Answer{Value: AnswerNo},
	})
	if err != nil {
		return false, err
	}
	return answer.Yes(), nil
}

// AutoApproveInterviewer always selects YES for yes/no questions and the
// first option for multiple choice. Used for --yes runs and tests.
type AutoApproveInterviewer struct{}

// Ask returns an auto-approved answer based on question type.
func (a *AutoApproveInterviewer) Ask(question *Question) (*Answer, error) {
	if question.Type == QuestionMultipleChoice {
		if len(question.Options) == 0 {
			return &Answer{Skipped: true}, nil
		}
		return &Answer{
			Value:          question.Options[0].Key,
			SelectedOption: &question.Options[0],
		}, nil
	}
	return &Answer{Value: AnswerYes}, nil
}

// Recording represents a recorded question-answer pair.
type Recording struct {
	Question *Question
	Answer   *Answer
}

// RecordingInterviewer wraps another interviewer and records all
// question-answer pairs.
type RecordingInterviewer struct {
	Inner      Interviewer
	mu         sync.Mutex
	recordings []Recording
}

// NewRecordingInterviewer creates a RecordingInterviewer wrapping inner.
func NewRecordingInterviewer(inner Interviewer) *RecordingInterviewer {
	return &RecordingInterviewer{
		Inner:      inner,
		recordings: make([]Recording, 0),
	}
}

// Ask delegates to the inner interviewer and records the pair.
func (r *RecordingInterviewer) Ask(question *Question) (*Answer, error) {
	answer, err := r.Inner.Ask(question)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.recordings = append(r.recordings, Recording{Question: question, Answer: answer})
	r.mu.Unlock()

	return answer, nil
}

// Recordings returns a copy of all recorded question-answer pairs.
func (r *RecordingInterviewer) Recordings() []Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Recording, len(r.recordings))
	copy(result, r.recordings)
	return result
}

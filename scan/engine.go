// Package scan drives keyword discovery over a set of source files: it lexes
// each file, extracts declaration sites, sorts them into duplicates and new
// keywords, and optionally asks a human to confirm each new one.
package scan

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/lexer"
)

// RunConfig holds configuration for a scan run.
type RunConfig struct {
	// Extractor finds declaration sites. Nil selects keywords.DefaultConfig.
	Extractor *keywords.Extractor

	// Lexer options applied to every file.
	Lexer lexer.Options

	// Keywords is the set being grown. Accepted names are added to it.
	Keywords *keywords.Set

	// Interviewer confirms new keywords when Confirm is set. Each new
	// keyword is offered with the KeywordChoices options.
	Interviewer Interviewer

	// Events receives progress events. May be nil.
	Events *EventEmitter

	// Confirm asks the Interviewer before accepting each new keyword.
	Confirm bool

	// Open opens a source file. Defaults to os.Open.
	Open func(path string) (io.ReadCloser, error)
}

// FileError records a file that could not be scanned.
type FileError struct {
	File string
	Err  error
}

func (e *FileError) Error() string { return e.File + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// RunResult holds the outcome of a scan run.
type RunResult struct {
	// ID identifies the run in events and reports.
	ID uuid.UUID

	Started  time.Time
	Duration time.Duration

	// Files lists the files scanned to completion, in order.
	Files []string

	// Failed lists the files abandoned on a lexical error.
	Failed []FileError

	// Accepted facts introduced a new keyword.
	Accepted []keywords.Fact

	// Rejected facts named a new keyword the human declined.
	Rejected []keywords.Fact

	// Duplicates named a keyword already in the set.
	Duplicates []keywords.Fact

	// Issues are the problems the extractor recovered from.
	Issues []error

	// Interview holds every question asked during the run and its answer.
	Interview []Recording
}

// Keys of the per-keyword confirmation question.
const (
	ChoiceAdd     = "y"
	ChoiceSkip    = "n"
	ChoiceAddAll  = "a"
	ChoiceSkipAll = "q"
)

// KeywordChoices are the replies offered for each new keyword. "a" accepts
// this and every later keyword without asking; "q" declines them all.
func KeywordChoices() []Option {
	return []Option{
		{Key: ChoiceAdd, Label: "add"},
		{Key: ChoiceSkip, Label: "skip"},
		{Key: ChoiceAddAll, Label: "add all"},
		{Key: ChoiceSkipAll, Label: "skip all"},
	}
}

// Run scans files in order. A file that fails to open or lex is recorded in
// Failed and the run moves on. Run returns an error only when the
// interviewer fails, together with the partial result.
func Run(files []string, config *RunConfig) (*RunResult, error) {
	if config == nil {
		config = &RunConfig{}
	}
	if config.Keywords == nil {
		config.Keywords = keywords.NewSet()
	}
	extractor := config.Extractor
	if extractor == nil {
		extractor = keywords.NewExtractor(keywords.DefaultConfig())
	}
	open := config.Open
	if open == nil {
		open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	if config.Confirm && config.Interviewer == nil {
		return nil, fmt.Errorf("confirmation requested but no interviewer configured")
	}

	result := &RunResult{ID: uuid.New(), Started: time.Now()}
	events := config.Events
	events.Emit(ScanStartedEvent(result.ID.String(), len(files)))

	var rec *RecordingInterviewer
	if config.Confirm {
		rec = NewRecordingInterviewer(config.Interviewer)
	}
	asking := config.Confirm
	skipRest := false

	declined := make(map[string]bool)
	var runErr error

files:
	for idx, path := range files {
		fileStart := time.Now()
		events.Emit(FileStartedEvent(path, idx))

		lexemes, err := lexFile(open, path, config.Lexer)
		if err != nil {
			result.Failed = append(result.Failed, FileError{File: path, Err: err})
			events.Emit(FileFailedEvent(path, err))
			continue
		}
		events.Emit(FileLexedEvent(path, lexemes))

		facts, issues := extractor.Extract(lexemes)
		for _, issue := range issues {
			result.Issues = append(result.Issues, issue)
			events.Emit(ExtractionIssueEvent(path, issue))
		}

		for _, fact := range facts {
			events.Emit(KeywordFoundEvent(fact))

			switch {
			case config.Keywords.Contains(fact.Name):
				result.Duplicates = append(result.Duplicates, fact)
				events.Emit(KeywordDuplicateEvent(fact))
				continue
			case declined[fact.Name]:
				result.Rejected = append(result.Rejected, fact)
				events.Emit(KeywordRejectedEvent(fact))
				continue
			}

			accept := !skipRest
			if accept && asking {
				choice, err := confirmFact(rec, events, fact)
				if err != nil {
					runErr = fmt.Errorf("confirming %s: %w", fact.Name, err)
					result.Files = append(result.Files, path)
					break files
				}
				switch choice {
				case ChoiceAdd:
				case ChoiceAddAll:
					asking = false
				case ChoiceSkipAll:
					skipRest = true
					accept = false
				default:
					accept = false
				}
			}

			if accept {
				config.Keywords.Add(fact.Name)
				result.Accepted = append(result.Accepted, fact)
				events.Emit(KeywordAcceptedEvent(fact))
			} else {
				declined[fact.Name] = true
				result.Rejected = append(result.Rejected, fact)
				events.Emit(KeywordRejectedEvent(fact))
			}
		}

		result.Files = append(result.Files, path)
		events.Emit(FileCompletedEvent(path, len(lexemes), len(facts), time.Since(fileStart)))
	}

	if rec != nil {
		result.Interview = rec.Recordings()
	}
	result.Duration = time.Since(result.Started)
	events.Emit(ScanCompletedEvent(result.ID.String(), result.Duration, len(result.Accepted), len(result.Failed)))
	return result, runErr
}

func lexFile(open func(string) (io.ReadCloser, error), path string, opts lexer.Options) ([]lexer.Lexeme, error) {
	f, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return lexer.Tokenize(path, f, opts)
}

// confirmFact offers fact to the interviewer and returns the chosen key.
// A skipped answer means input ran out, so it declines the rest.
func confirmFact(i Interviewer, events *EventEmitter, fact keywords.Fact) (string, error) {
	text := fmt.Sprintf("Add %s to the keyword set?", fact.Name)
	stage := fmt.Sprintf("%s:%d", fact.File, fact.Line)

	start := time.Now()
	events.Emit(InterviewStartedEvent(text, stage))
	answer, err := i.Ask(&Question{
		Text:    text,
		Type:    QuestionMultipleChoice,
		Options: KeywordChoices(),
		Stage:   stage,
		Default: &Answer{Value: ChoiceSkip},
	})
	if err != nil {
		return "", err
	}
	choice := answer.Value
	if answer.Skipped {
		choice = ChoiceSkipAll
	}
	events.Emit(InterviewCompletedEvent(text, choice, time.Since(start)))
	return choice, nil
}

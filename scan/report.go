package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nanorc-tools/nrc/keywords"
)

// Report is the serializable summary of a run.
type Report struct {
	ID         string       `json:"id"`
	Started    time.Time    `json:"started"`
	DurationMS int64        `json:"duration_ms"`
	Files      []string     `json:"files"`
	Failed     []FailedFile `json:"failed"`
	Accepted   []ReportFact `json:"accepted"`
	Rejected   []ReportFact `json:"rejected"`
	Duplicates []ReportFact `json:"duplicates"`
	Issues     []string     `json:"issues"`
	Interview  []Exchange   `json:"interview,omitempty"`
}

// Exchange is one question put to the human and the reply given.
type Exchange struct {
	Stage    string `json:"stage,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Label    string `json:"label,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
}

// FailedFile is a file that could not be scanned.
type FailedFile struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ReportFact is one discovered keyword. The context window is left out.
type ReportFact struct {
	Name      string `json:"name"`
	Specifier string `json:"specifier"`
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
}

// NewReport builds the report for result.
func NewReport(result *RunResult) *Report {
	r := &Report{
		ID:         result.ID.String(),
		Started:    result.Started,
		DurationMS: result.Duration.Milliseconds(),
		Files:      append([]string{}, result.Files...),
		Failed:     make([]FailedFile, 0, len(result.Failed)),
		Accepted:   reportFacts(result.Accepted),
		Rejected:   reportFacts(result.Rejected),
		Duplicates: reportFacts(result.Duplicates),
		Issues:     make([]string, 0, len(result.Issues)),
	}
	for _, f := range result.Failed {
		r.Failed = append(r.Failed, FailedFile{File: f.File, Error: f.Err.Error()})
	}
	for _, issue := range result.Issues {
		r.Issues = append(r.Issues, issue.Error())
	}
	for _, rec := range result.Interview {
		x := Exchange{
			Stage:    rec.Question.Stage,
			Question: rec.Question.Text,
			Answer:   rec.Answer.Value,
			Skipped:  rec.Answer.Skipped,
		}
		if rec.Answer.SelectedOption != nil {
			x.Label = rec.Answer.SelectedOption.Label
		}
		r.Interview = append(r.Interview, x)
	}
	return r
}

func reportFacts(facts []keywords.Fact) []ReportFact {
	out := make([]ReportFact, 0, len(facts))
	for _, f := range facts {
		out = append(out, ReportFact{
			Name:      f.Name,
			Specifier: f.Specifier,
			File:      f.File,
			Line:      f.Line,
			Column:    f.Column,
		})
	}
	return out
}

// WriteReport serializes the report of result to JSON at path, creating the
// parent directory if needed.
func WriteReport(path string, result *RunResult) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(NewReport(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, nil
}

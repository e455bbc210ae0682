package scan

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanorc-tools/nrc/keywords"
)

func TestWriteReport_And_ReadReport(t *testing.T) {
	result := &RunResult{
		ID:       uuid.New(),
		Started:  time.Now().Truncate(time.Millisecond),
		Duration: 1500 * time.Millisecond,
		Files:    []string{"a.h"},
		Failed:   []FileError{{File: "b.h", Err: errors.New("unexpected character")}},
		Accepted: []keywords.Fact{
			{Name: "Widget", Specifier: "class", File: "a.h", Line: 1, Column: 7, Context: "class Widget;"},
		},
		Duplicates: []keywords.Fact{{Name: "Size", Specifier: "typedef", File: "a.h", Line: 2, Column: 13}},
		Issues:     []error{errors.New("a.h:3: class is the last lexeme, no name follows")},
	}

	path := filepath.Join(t.TempDir(), "reports", "run.json")
	require.NoError(t, WriteReport(path, result))

	loaded, err := ReadReport(path)
	require.NoError(t, err)

	assert.Equal(t, result.ID.String(), loaded.ID)
	assert.WithinDuration(t, result.Started, loaded.Started, time.Second)
	assert.Equal(t, int64(1500), loaded.DurationMS)
	assert.Equal(t, []string{"a.h"}, loaded.Files)
	assert.Equal(t, []FailedFile{{File: "b.h", Error: "unexpected character"}}, loaded.Failed)
	assert.Equal(t, []ReportFact{{Name: "Widget", Specifier: "class", File: "a.h", Line: 1, Column: 7}}, loaded.Accepted)
	assert.Empty(t, loaded.Rejected)
	assert.Len(t, loaded.Duplicates, 1)
	assert.Equal(t, []string{"a.h:3: class is the last lexeme, no name follows"}, loaded.Issues)
}

func TestReadReport_Missing(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}

func TestWriteReport_IncludesInterview(t *testing.T) {
	result, err := Run([]string{"a.h"}, &RunConfig{
		Confirm:     true,
		Interviewer: &scripted{lines: []string{"a"}},
		Open:        memOpen(map[string]string{"a.h": "class A;\nclass B;\n"}),
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, WriteReport(path, result))
	loaded, err := ReadReport(path)
	require.NoError(t, err)

	assert.Equal(t, []Exchange{{
		Stage:    "a.h:1",
		Question: "Add A to the keyword set?",
		Answer:   ChoiceAddAll,
		Label:    "add all",
	}}, loaded.Interview)
	assert.Len(t, loaded.Accepted, 2)
}

func TestWriteReport_OmitsInterviewWhenNotAsked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, WriteReport(path, &RunResult{ID: uuid.New()}))

	loaded, err := ReadReport(path)
	require.NoError(t, err)
	assert.Nil(t, loaded.Interview)
}

package scan

import (
	"sync"
	"time"

	"github.com/nanorc-tools/nrc/keywords"
	"github.com/nanorc-tools/nrc/lexer"
)

// EventType represents the type of scan event.
type EventType string

const (
	// Scan lifecycle events
	EventScanStarted   EventType = "scan_started"
	EventScanCompleted EventType = "scan_completed"

	// File lifecycle events
	EventFileStarted   EventType = "file_started"
	EventFileLexed     EventType = "file_lexed"
	EventFileCompleted EventType = "file_completed"
	EventFileFailed    EventType = "file_failed"

	// Extraction events
	EventExtractionIssue  EventType = "extraction_issue"
	EventKeywordFound     EventType = "keyword_found"
	EventKeywordDuplicate EventType = "keyword_duplicate"
	EventKeywordAccepted  EventType = "keyword_accepted"
	EventKeywordRejected  EventType = "keyword_rejected"

	// Human interaction events
	EventInterviewStarted   EventType = "interview_started"
	EventInterviewCompleted EventType = "interview_completed"
)

// Event represents an observable scan event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener. Listeners are called synchronously in
// registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners. A nil emitter
// drops the event.
func (e *EventEmitter) Emit(event Event) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

func newEvent(t EventType, data map[string]any) Event {
	return Event{Type: t, Timestamp: time.Now(), Data: data}
}

// ScanStartedEvent creates a scan_started event.
func ScanStartedEvent(id string, files int) Event {
	return newEvent(EventScanStarted, map[string]any{
		"id":    id,
		"files": files,
	})
}

// ScanCompletedEvent creates a scan_completed event.
func ScanCompletedEvent(id string, duration time.Duration, accepted, failed int) Event {
	return newEvent(EventScanCompleted, map[string]any{
		"id":          id,
		"duration_ms": duration.Milliseconds(),
		"accepted":    accepted,
		"failed":      failed,
	})
}

// FileStartedEvent creates a file_started event.
func FileStartedEvent(file string, index int) Event {
	return newEvent(EventFileStarted, map[string]any{
		"file":  file,
		"index": index,
	})
}

// FileLexedEvent creates a file_lexed event carrying the lexeme sequence.
func FileLexedEvent(file string, lexemes []lexer.Lexeme) Event {
	return newEvent(EventFileLexed, map[string]any{
		"file":    file,
		"lexemes": lexemes,
	})
}

// FileCompletedEvent creates a file_completed event.
func FileCompletedEvent(file string, lexemes, facts int, duration time.Duration) Event {
	return newEvent(EventFileCompleted, map[string]any{
		"file":        file,
		"lexemes":     lexemes,
		"facts":       facts,
		"duration_ms": duration.Milliseconds(),
	})
}

// FileFailedEvent creates a file_failed event.
func FileFailedEvent(file string, err error) Event {
	return newEvent(EventFileFailed, map[string]any{
		"file":  file,
		"error": err.Error(),
	})
}

// ExtractionIssueEvent creates an extraction_issue event.
func ExtractionIssueEvent(file string, err error) Event {
	return newEvent(EventExtractionIssue, map[string]any{
		"file":  file,
		"error": err.Error(),
	})
}

// keywordEvent carries every field of the fact so listeners can render it.
func keywordEvent(t EventType, f keywords.Fact) Event {
	return newEvent(t, map[string]any{
		"name":      f.Name,
		"specifier": f.Specifier,
		"file":      f.File,
		"line":      f.Line,
		"column":    f.Column,
		"context":   f.Context,
	})
}

// KeywordFoundEvent creates a keyword_found event.
func KeywordFoundEvent(f keywords.Fact) Event { return keywordEvent(EventKeywordFound, f) }

// KeywordDuplicateEvent creates a keyword_duplicate event.
func KeywordDuplicateEvent(f keywords.Fact) Event { return keywordEvent(EventKeywordDuplicate, f) }

// KeywordAcceptedEvent creates a keyword_accepted event.
func KeywordAcceptedEvent(f keywords.Fact) Event { return keywordEvent(EventKeywordAccepted, f) }

// KeywordRejectedEvent creates a keyword_rejected event.
func KeywordRejectedEvent(f keywords.Fact) Event { return keywordEvent(EventKeywordRejected, f) }

// FactFromEvent rebuilds the fact carried by a keyword event.
func FactFromEvent(e Event) (keywords.Fact, bool) {
	name, ok := e.Data["name"].(string)
	if !ok {
		return keywords.Fact{}, false
	}
	f := keywords.Fact{Name: name}
	f.Specifier, _ = e.Data["specifier"].(string)
	f.File, _ = e.Data["file"].(string)
	f.Line, _ = e.Data["line"].(int)
	f.Column, _ = e.Data["column"].(int)
	f.Context, _ = e.Data["context"].(string)
	return f, true
}

// InterviewStartedEvent creates an interview_started event.
func InterviewStartedEvent(question, stage string) Event {
	return newEvent(EventInterviewStarted, map[string]any{
		"question": question,
		"stage":    stage,
	})
}

// InterviewCompletedEvent creates an interview_completed event.
func InterviewCompletedEvent(question, answer string, duration time.Duration) Event {
	return newEvent(EventInterviewCompleted, map[string]any{
		"question":    question,
		"answer":      answer,
		"duration_ms": duration.Milliseconds(),
	})
}

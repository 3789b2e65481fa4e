package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emmett/unstick/internal/modifiers"
)

// AttemptResult is one backend invocation as rendered to the user
type AttemptResult struct {
	Tool  string `json:"tool"`
	Error string `json:"error,omitempty"`
}

// ReleaseResult represents the result of a single modifier release
type ReleaseResult struct {
	Released  bool            `json:"released"`
	Tool      string          `json:"tool,omitempty"`
	Error     string          `json:"error,omitempty"`
	Attempts  []AttemptResult `json:"attempts"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewReleaseResult converts a releaser outcome and error for display
func NewReleaseResult(out modifiers.Outcome, err error) ReleaseResult {
	res := ReleaseResult{
		Released:  err == nil,
		Tool:      out.Tool,
		Attempts:  make([]AttemptResult, 0, len(out.Attempts)),
		Timestamp: time.Now(),
	}
	if err != nil {
		res.Error = err.Error()
	}
	for _, a := range out.Attempts {
		ar := AttemptResult{Tool: a.Tool}
		if a.Err != nil {
			ar.Error = a.Err.Error()
		}
		res.Attempts = append(res.Attempts, ar)
	}
	return res
}

// Formatter is the interface for output formatters
type Formatter interface {
	// WriteResult writes a release result
	WriteResult(result ReleaseResult) error

	// WriteEvent writes a system event (e.g. hotkey registered)
	WriteEvent(eventType, message string) error
}

// Event represents a system event
type Event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewFormatter returns the formatter for a format name: console, text or json
func NewFormatter(format string, writer io.Writer) (Formatter, error) {
	switch format {
	case "", "console", "text":
		return NewPlainTextFormatter(writer), nil
	case "json":
		return NewJSONFormatter(writer), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// JSONFormatter outputs one JSON object per result
type JSONFormatter struct {
	encoder *json.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(writer io.Writer) *JSONFormatter {
	return &JSONFormatter{encoder: json.NewEncoder(writer)}
}

// WriteResult writes a release result in JSON format
func (j *JSONFormatter) WriteResult(result ReleaseResult) error {
	return j.encoder.Encode(result)
}

// WriteEvent writes a system event
func (j *JSONFormatter) WriteEvent(eventType, message string) error {
	return j.encoder.Encode(Event{
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// PlainTextFormatter outputs results as human-readable lines
type PlainTextFormatter struct {
	writer io.Writer
}

// NewPlainTextFormatter creates a new plain text formatter
func NewPlainTextFormatter(writer io.Writer) *PlainTextFormatter {
	return &PlainTextFormatter{writer: writer}
}

// WriteResult writes a release result in plain text
func (p *PlainTextFormatter) WriteResult(result ReleaseResult) error {
	timestamp := result.Timestamp.Format("15:04:05")

	var text string
	if result.Released {
		text = fmt.Sprintf("[%s] Released modifiers via %s\n", timestamp, result.Tool)
	} else {
		text = fmt.Sprintf("[%s] Failed: %s\n", timestamp, result.Error)
		for _, a := range result.Attempts {
			text += fmt.Sprintf("  - %s\n", strings.TrimSpace(a.Error))
		}
	}

	_, err := io.WriteString(p.writer, text)
	return err
}

// WriteEvent writes a system event
func (p *PlainTextFormatter) WriteEvent(eventType, message string) error {
	timestamp := time.Now().Format("15:04:05")
	_, err := fmt.Fprintf(p.writer, "[%s] [%s] %s\n", timestamp, eventType, message)
	return err
}

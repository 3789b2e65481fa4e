package modifiers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAllToolsExhausted matches any ExhaustedError via errors.Is
var ErrAllToolsExhausted = errors.New("no tool available to release modifiers")

// SpawnError means the tool could not be started at all
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExecError means the tool ran and exited with a non-zero status.
// Stderr is kept as captured; Error trims its trailing newline.
type ExecError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Tool, strings.TrimRight(e.Stderr, "\r\n"))
}

// ExhaustedError means every configured tool failed
type ExhaustedError struct {
	Tools    []string
	Attempts []error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s (tried %s)", ErrAllToolsExhausted.Error(), strings.Join(e.Tools, ", "))
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAllToolsExhausted
}

func (e *ExhaustedError) Unwrap() []error {
	return e.Attempts
}

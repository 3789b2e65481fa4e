package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Result is what a finished process leaves behind
type Result struct {
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner runs external commands, discarding stdout and capturing stderr.
//
// A process that started and exited yields a Result and a nil error, whatever
// its exit status. A non-nil error means the process never ran to completion
// (executable missing, permission denied, context cancelled before start).
type CommandRunner interface {
	RunStderr(ctx context.Context, name string, args ...string) (Result, error)
}

type DefaultCommandRunner struct{}

var _ CommandRunner = &DefaultCommandRunner{}

func (d *DefaultCommandRunner) RunStderr(ctx context.Context, name string, args ...string) (Result, error) {
	log.Debug("Running command (stderr only): ", name, " ", args)
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was killed by a signal
		res.ExitCode = exitErr.ExitCode()
		log.Debug("Command stderr output: ", res.Stderr)
		return res, nil
	}
	if err != nil {
		return res, err
	}

	log.Debug("Command stderr output: ", res.Stderr)
	return res, nil
}

// Call is a single recorded invocation
type Call struct {
	Name string
	Args []string
}

// FakeResponse scripts the outcome of running one command name
type FakeResponse struct {
	Result Result
	Err    error
}

// FakeCommandRunner records calls and answers from Responses keyed by command
// name. Unknown names behave like a missing executable.
type FakeCommandRunner struct {
	Responses map[string]FakeResponse

	mu    sync.Mutex
	calls []Call
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) RunStderr(ctx context.Context, name string, args ...string) (Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	resp, ok := f.Responses[name]
	if !ok {
		return Result{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return resp.Result, resp.Err
}

// Calls returns a copy of the recorded invocations in order
func (f *FakeCommandRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

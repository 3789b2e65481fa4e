// Package modifiers releases held keyboard modifiers (Shift, Ctrl, Alt, Super)
// before typed output is injected, so that modifiers left down by a compositor
// keybinding such as SUPER+CTRL+X do not turn typed text into shortcuts.
//
// Key events are delegated to external tools, tried in order until one
// succeeds: wtype (Wayland-native) first, ydotool as the fallback.
package modifiers

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/emmett/unstick/internal/runner"
)

// Attempt is the result of invoking one backend
type Attempt struct {
	Tool string
	Err  error
}

// Outcome reports which backend released the modifiers and every attempt made
type Outcome struct {
	Tool     string
	Attempts []Attempt
}

// Releaser tries its backends in order until one exits successfully
type Releaser struct {
	runner   runner.CommandRunner
	backends []Backend
}

// NewReleaser creates a Releaser. A nil runner uses the real process runner
// and an empty backend list uses DefaultBackends.
func NewReleaser(r runner.CommandRunner, backends ...Backend) *Releaser {
	if r == nil {
		r = &runner.DefaultCommandRunner{}
	}
	if len(backends) == 0 {
		backends = DefaultBackends()
	}
	return &Releaser{
		runner:   r,
		backends: append([]Backend(nil), backends...),
	}
}

// Backends returns the backends in the order they are tried
func (r *Releaser) Backends() []Backend {
	return append([]Backend(nil), r.backends...)
}

// ReleaseAll releases all modifier keys using the first backend that works
func (r *Releaser) ReleaseAll(ctx context.Context) error {
	_, err := r.Release(ctx)
	return err
}

// Release is ReleaseAll that also reports the attempts made.
//
// A backend that exits non-zero counts as failed even if it managed to
// release some keys before failing; the next backend is tried.
func (r *Releaser) Release(ctx context.Context) (Outcome, error) {
	var out Outcome
	tools := make([]string, 0, len(r.backends))
	errs := make([]error, 0, len(r.backends))

	for _, b := range r.backends {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("release modifiers: %w", err)
		}

		err := r.run(ctx, b)
		out.Attempts = append(out.Attempts, Attempt{Tool: b.Name, Err: err})
		if err == nil {
			out.Tool = b.Name
			log.Debugf("Released modifiers via %s", b.Name)
			return out, nil
		}

		log.WithError(err).Debugf("Modifier release via %s failed", b.Name)
		tools = append(tools, b.Name)
		errs = append(errs, err)
	}

	if err := ctx.Err(); err != nil {
		return out, fmt.Errorf("release modifiers: %w", err)
	}

	return out, &ExhaustedError{Tools: tools, Attempts: errs}
}

func (r *Releaser) run(ctx context.Context, b Backend) error {
	res, err := r.runner.RunStderr(ctx, b.Command, b.args...)
	if err != nil {
		return &SpawnError{Tool: b.Name, Err: err}
	}
	if !res.Success() {
		return &ExecError{Tool: b.Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// ReleaseAll releases all modifier keys with the default backends
func ReleaseAll(ctx context.Context) error {
	return NewReleaser(nil).ReleaseAll(ctx)
}

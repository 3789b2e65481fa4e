package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/emmett/unstick/internal/modifiers"
	"github.com/emmett/unstick/internal/output"
)

// Releaser is the part of modifiers.Releaser the listener needs
type Releaser interface {
	Release(ctx context.Context) (modifiers.Outcome, error)
}

// Trigger fires onPress whenever the user asks for a release
type Trigger interface {
	Start(ctx context.Context, hotkey string) error
	Stop()
}

// TriggerFactory builds a Trigger wired to onPress
type TriggerFactory func(onPress func()) Trigger

// ListenerConfig holds configuration for listen mode
type ListenerConfig struct {
	Hotkey    string
	Releaser  Releaser
	Formatter output.Formatter
	Trigger   TriggerFactory
}

// Listener releases modifiers every time its hotkey is pressed
type Listener struct {
	config   ListenerConfig
	releases int
	failures int
}

// NewListener creates a new Listener. config.Trigger is required; the
// hotkey-backed factory lives with the listen binary so that this package
// never links the X11 hotkey library.
func NewListener(config ListenerConfig) *Listener {
	return &Listener{config: config}
}

// Run registers the hotkey and serves presses until ctx is cancelled
func (l *Listener) Run(ctx context.Context) error {
	if l.config.Trigger == nil {
		return fmt.Errorf("no trigger configured")
	}

	// Buffered so a burst of presses while a release is running is not lost
	pressChan := make(chan struct{}, 10)

	trigger := l.config.Trigger(func() {
		select {
		case pressChan <- struct{}{}:
		default:
			log.Debug("Dropping hotkey press, release queue full")
		}
	})

	if err := trigger.Start(ctx, l.config.Hotkey); err != nil {
		return fmt.Errorf("failed to start hotkey listener: %w", err)
	}
	defer trigger.Stop()

	if err := l.config.Formatter.WriteEvent("listening",
		fmt.Sprintf("Press %s to release held modifiers. Press Ctrl+C to exit.", l.config.Hotkey)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Debugf("Listener stopping after %d releases (%d failed)", l.releases, l.failures)
			return nil

		case <-pressChan:
			out, err := l.config.Releaser.Release(ctx)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				l.failures++
			} else {
				l.releases++
			}
			if werr := l.config.Formatter.WriteResult(output.NewReleaseResult(out, err)); werr != nil {
				return fmt.Errorf("failed to write result: %w", werr)
			}
		}
	}
}

// Stats returns successful and failed release counts
func (l *Listener) Stats() (releases, failures int) {
	return l.releases, l.failures
}

package modifiers

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmett/unstick/internal/runner"
)

var (
	expectedWtypeArgs   = []string{"-m", "shift", "-m", "ctrl", "-m", "logo", "-m", "alt", "-m", "altgr"}
	expectedYdotoolArgs = []string{"key", "42:0", "54:0", "29:0", "97:0", "56:0", "100:0", "125:0", "126:0"}
)

func TestReleaseAllWtypeSucceeds(t *testing.T) {
	fake := &runner.FakeCommandRunner{Responses: map[string]runner.FakeResponse{
		Wtype:   {},
		Ydotool: {},
	}}

	out, err := NewReleaser(fake).Release(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Wtype, out.Tool)

	calls := fake.Calls()
	require.Len(t, calls, 1, "ydotool must not run once wtype succeeds")
	assert.Equal(t, Wtype, calls[0].Name)
	assert.Equal(t, expectedWtypeArgs, calls[0].Args)
}

func TestReleaseAllFallsBackToYdotool(t *testing.T) {
	tests := []struct {
		name  string
		wtype *runner.FakeResponse
	}{
		{name: "wtype missing"},
		{name: "wtype exits non-zero", wtype: &runner.FakeResponse{
			Result: runner.Result{ExitCode: 1, Stderr: "permission denied"},
		}},
		{name: "wtype spawn error", wtype: &runner.FakeResponse{
			Err: errors.New("fork/exec wtype: resource temporarily unavailable"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]runner.FakeResponse{Ydotool: {}}
			if tt.wtype != nil {
				responses[Wtype] = *tt.wtype
			}
			fake := &runner.FakeCommandRunner{Responses: responses}

			out, err := NewReleaser(fake).Release(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Ydotool, out.Tool)
			require.Len(t, out.Attempts, 2)
			assert.Error(t, out.Attempts[0].Err)
			assert.NoError(t, out.Attempts[1].Err)

			calls := fake.Calls()
			require.Len(t, calls, 2)
			assert.Equal(t, Wtype, calls[0].Name)
			assert.Equal(t, expectedWtypeArgs, calls[0].Args)
			assert.Equal(t, Ydotool, calls[1].Name)
			assert.Equal(t, expectedYdotoolArgs, calls[1].Args)
		})
	}
}

func TestReleaseAllBothFail(t *testing.T) {
	fake := &runner.FakeCommandRunner{Responses: map[string]runner.FakeResponse{
		Ydotool: {Result: runner.Result{ExitCode: 2, Stderr: "failed to connect socket"}},
	}}

	err := NewReleaser(fake).ReleaseAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, "no tool available to release modifiers (tried wtype, ydotool)", err.Error())
	assert.Contains(t, err.Error(), "wtype")
	assert.Contains(t, err.Error(), "ydotool")
	assert.ErrorIs(t, err, ErrAllToolsExhausted)

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, Wtype, spawnErr.Tool)
	assert.ErrorIs(t, spawnErr, exec.ErrNotFound)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, Ydotool, execErr.Tool)
	assert.Equal(t, 2, execErr.ExitCode)
	assert.Equal(t, "ydotool error: failed to connect socket", execErr.Error())
}

func TestReleaseAllCancelledContext(t *testing.T) {
	fake := &runner.FakeCommandRunner{Responses: map[string]runner.FakeResponse{Wtype: {}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewReleaser(fake).ReleaseAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAllToolsExhausted)
	assert.Empty(t, fake.Calls())
}

func TestReleaserCustomOrderAndCommand(t *testing.T) {
	fake := &runner.FakeCommandRunner{Responses: map[string]runner.FakeResponse{
		"/opt/bin/ydotool": {},
	}}

	r := NewReleaser(fake, YdotoolBackend().WithCommand("/opt/bin/ydotool"), WtypeBackend())
	out, err := r.Release(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Ydotool, out.Tool)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/opt/bin/ydotool", calls[0].Name)
	assert.Equal(t, expectedYdotoolArgs, calls[0].Args)
}

func TestBackendArgsAreCopies(t *testing.T) {
	args := WtypeBackend().Args()
	args[1] = "super"
	assert.Equal(t, expectedWtypeArgs, WtypeBackend().Args())
}

func TestBackendByName(t *testing.T) {
	b, err := BackendByName("ydotool")
	require.NoError(t, err)
	assert.Equal(t, Ydotool, b.Command)

	_, err = BackendByName("xdotool")
	assert.EqualError(t, err, "unknown backend: xdotool")
}

func TestExecErrorTrimsTrailingNewline(t *testing.T) {
	err := &ExecError{Tool: Wtype, ExitCode: 1, Stderr: "permission denied\n"}
	assert.Equal(t, "wtype error: permission denied", err.Error())
	assert.Equal(t, "permission denied\n", err.Stderr)
}

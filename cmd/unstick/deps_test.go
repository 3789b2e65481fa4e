package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The hotkey library opens an X11 display in its init and panics without
// one, so it must stay out of this binary.
func TestBinaryDoesNotLinkHotkey(t *testing.T) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}

	out, err := exec.Command(goBin, "list", "-deps", ".").Output()
	require.NoError(t, err)

	deps := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.NotContains(t, deps, "golang.design/x/hotkey")
	assert.NotContains(t, deps, "github.com/emmett/unstick/internal/input")
}

package modifiers

import (
	"fmt"
	"os/exec"
)

const (
	Wtype   = "wtype"
	Ydotool = "ydotool"
)

// wtype -m releases a modifier: shift, ctrl, logo, alt, altgr
var wtypeArgs = []string{
	"-m", "shift",
	"-m", "ctrl",
	"-m", "logo",
	"-m", "alt",
	"-m", "altgr",
}

// ydotool key codes, <code>:0 sends key release
//   - 42 = KEY_LEFTSHIFT, 54 = KEY_RIGHTSHIFT
//   - 29 = KEY_LEFTCTRL, 97 = KEY_RIGHTCTRL
//   - 56 = KEY_LEFTALT, 100 = KEY_RIGHTALT
//   - 125 = KEY_LEFTMETA (Super), 126 = KEY_RIGHTMETA
var ydotoolArgs = []string{
	"key",
	"42:0",
	"54:0",
	"29:0",
	"97:0",
	"56:0",
	"100:0",
	"125:0",
	"126:0",
}

// Backend is one external tool able to release modifiers
type Backend struct {
	// Name identifies the tool in messages and config
	Name string

	// Command is the executable to run (defaults to Name)
	Command string

	args []string
}

// Args returns a copy of the fixed argument list for the tool
func (b Backend) Args() []string {
	return append([]string(nil), b.args...)
}

// WithCommand returns the backend with its executable replaced.
// An empty command keeps the current one.
func (b Backend) WithCommand(command string) Backend {
	if command != "" {
		b.Command = command
	}
	return b
}

// WtypeBackend releases modifiers with wtype (Wayland virtual keyboard)
func WtypeBackend() Backend {
	return Backend{Name: Wtype, Command: Wtype, args: wtypeArgs}
}

// YdotoolBackend releases modifiers with ydotool (uinput)
func YdotoolBackend() Backend {
	return Backend{Name: Ydotool, Command: Ydotool, args: ydotoolArgs}
}

// DefaultBackends returns the fallback order: wtype, then ydotool
func DefaultBackends() []Backend {
	return []Backend{WtypeBackend(), YdotoolBackend()}
}

// BackendByName resolves a configured backend name
func BackendByName(name string) (Backend, error) {
	switch name {
	case Wtype:
		return WtypeBackend(), nil
	case Ydotool:
		return YdotoolBackend(), nil
	default:
		return Backend{}, fmt.Errorf("unknown backend: %s", name)
	}
}

// BackendStatus describes whether a backend's executable can be found
type BackendStatus struct {
	Backend Backend
	Path    string
	Found   bool
}

// Available checks each backend's executable on PATH
func Available(backends []Backend) []BackendStatus {
	statuses := make([]BackendStatus, 0, len(backends))
	for _, b := range backends {
		path, err := exec.LookPath(b.Command)
		statuses = append(statuses, BackendStatus{
			Backend: b,
			Path:    path,
			Found:   err == nil,
		})
	}
	return statuses
}

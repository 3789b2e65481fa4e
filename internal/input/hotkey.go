package input

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.design/x/hotkey"

	"github.com/emmett/unstick/internal/input/combo"
)

// HotkeyManager manages global hotkey registration and events
type HotkeyManager struct {
	mu      sync.Mutex
	hk      *hotkey.Hotkey
	presses int
	onPress func()
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewHotkeyManager creates a new HotkeyManager. onPress runs on the
// listener goroutine for every keyup of the hotkey.
func NewHotkeyManager(onPress func()) *HotkeyManager {
	return &HotkeyManager{
		onPress: onPress,
		done:    make(chan struct{}),
	}
}

// Start registers the hotkey and begins listening for presses
func (h *HotkeyManager) Start(ctx context.Context, hotkeyStr string) error {
	c, err := combo.Parse(hotkeyStr)
	if err != nil {
		return fmt.Errorf("invalid hotkey: %w", err)
	}
	mods, key, err := toHotkey(c)
	if err != nil {
		return fmt.Errorf("invalid hotkey: %w", err)
	}

	h.hk = hotkey.New(mods, key)
	if err := h.hk.Register(); err != nil {
		return fmt.Errorf("failed to register hotkey: %w", err)
	}

	ctx, h.cancel = context.WithCancel(ctx)

	go func() {
		defer close(h.done)
		for {
			select {
			case <-ctx.Done():
				return
			// Keyup, not keydown: releasing while the combo is still
			// physically held would be undone immediately.
			case _, ok := <-h.hk.Keyup():
				if !ok {
					return
				}
				h.mu.Lock()
				h.presses++
				h.mu.Unlock()

				if h.onPress != nil {
					h.onPress()
				}
			}
		}
	}()

	return nil
}

// Stop stops listening for hotkey events
func (h *HotkeyManager) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
	if h.hk != nil {
		h.hk.Unregister()
	}
	if h.done != nil && h.cancel != nil {
		select {
		case <-h.done:
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// Presses returns how many times the hotkey fired
func (h *HotkeyManager) Presses() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.presses
}

func toHotkey(c combo.Combo) ([]hotkey.Modifier, hotkey.Key, error) {
	mods := make([]hotkey.Modifier, 0, len(c.Mods))
	for _, m := range c.Mods {
		mod, ok := modifierMap()[m]
		if !ok {
			return nil, 0, fmt.Errorf("unsupported modifier: %s", m)
		}
		mods = append(mods, mod)
	}

	key, ok := keyMap[c.Key]
	if !ok {
		return nil, 0, fmt.Errorf("unknown key: %s", c.Key)
	}
	return mods, key, nil
}

var keyMap = map[string]hotkey.Key{
	"space": hotkey.KeySpace, "enter": hotkey.KeyReturn, "tab": hotkey.KeyTab, "escape": hotkey.KeyEscape,
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD, "e": hotkey.KeyE,
	"f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH, "i": hotkey.KeyI, "j": hotkey.KeyJ,
	"k": hotkey.KeyK, "l": hotkey.KeyL, "m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO,
	"p": hotkey.KeyP, "q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX, "y": hotkey.KeyY,
	"z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3, "4": hotkey.Key4,
	"5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7, "8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
}

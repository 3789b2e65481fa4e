//go:build linux

package input

import (
	"golang.design/x/hotkey"

	"github.com/emmett/unstick/internal/input/combo"
)

// X11 maps Alt to Mod1 and Super to Mod4
func modifierMap() map[combo.Modifier]hotkey.Modifier {
	return map[combo.Modifier]hotkey.Modifier{
		combo.ModCtrl:  hotkey.ModCtrl,
		combo.ModShift: hotkey.ModShift,
		combo.ModAlt:   hotkey.Mod1,
		combo.ModSuper: hotkey.Mod4,
	}
}

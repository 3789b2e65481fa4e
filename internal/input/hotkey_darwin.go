//go:build darwin

package input

import (
	"golang.design/x/hotkey"

	"github.com/emmett/unstick/internal/input/combo"
)

func modifierMap() map[combo.Modifier]hotkey.Modifier {
	return map[combo.Modifier]hotkey.Modifier{
		combo.ModCtrl:  hotkey.ModCtrl,
		combo.ModShift: hotkey.ModShift,
		combo.ModAlt:   hotkey.ModOption,
		combo.ModSuper: hotkey.ModCmd,
	}
}
